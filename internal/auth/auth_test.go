package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour, zerolog.Nop())

	token, err := m.GenerateToken("admin")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestValidateTokenRejectsForeignKey(t *testing.T) {
	a := NewTokenManager("key-a", time.Hour, zerolog.Nop())
	b := NewTokenManager("key-b", time.Hour, zerolog.Nop())

	token, err := a.GenerateToken("admin")
	require.NoError(t, err)

	_, err = b.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Minute, zerolog.Nop())
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := m.GenerateToken("admin")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTokenRejectsNoneAlg(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour, zerolog.Nop())
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "admin"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestRandomKeyWhenSecretMissing(t *testing.T) {
	a := NewTokenManager("", time.Hour, zerolog.Nop())
	b := NewTokenManager("", time.Hour, zerolog.Nop())

	token, err := a.GenerateToken("admin")
	require.NoError(t, err)
	_, err = a.ValidateToken(token)
	require.NoError(t, err)
	_, err = b.ValidateToken(token)
	assert.Error(t, err)
}

func TestAdminAuthenticate(t *testing.T) {
	admin, err := NewAdmin("admin", "hunter2")
	require.NoError(t, err)
	require.True(t, admin.Enabled())

	assert.NoError(t, admin.Authenticate("admin", "hunter2"))
	assert.ErrorIs(t, admin.Authenticate("admin", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, admin.Authenticate("root", "hunter2"), ErrInvalidCredentials)
}

func TestAdminDisabled(t *testing.T) {
	admin, err := NewAdmin("admin", "")
	require.NoError(t, err)
	assert.False(t, admin.Enabled())
	assert.ErrorIs(t, admin.Authenticate("admin", ""), ErrAdminDisabled)
}
