package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminDisabled      = errors.New("admin login is not configured")
)

// Admin holds the single operator account allowed to insert documents.
// The password is kept only as a bcrypt hash.
type Admin struct {
	username     string
	passwordHash []byte
}

func NewAdmin(username, password string) (*Admin, error) {
	if username == "" || password == "" {
		return &Admin{}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Admin{username: username, passwordHash: hash}, nil
}

func (a *Admin) Enabled() bool {
	return a != nil && a.username != "" && len(a.passwordHash) > 0
}

func (a *Admin) Authenticate(username, password string) error {
	if !a.Enabled() {
		return ErrAdminDisabled
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil || !userOK {
		return ErrInvalidCredentials
	}
	return nil
}
