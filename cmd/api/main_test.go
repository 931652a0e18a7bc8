package main

import (
	"context"
	"testing"
	"time"

	"DocVerifier_BluestockProject/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		HTTPAddr:        "127.0.0.1:0",
		Environment:     "test",
		ShutdownTimeout: time.Second,
		VerifyPath:      "/verify",
		PublicOrigin:    "http://localhost",
		StoreDriver:     "sqlite",
		SQLiteDSN:       ":memory:",
		HistoryLimit:    10,
		TokenTTL:        time.Hour,
		AdminUsername:   "admin",
		AdminPassword:   "pw",
		RateLimitRPS:    5,
		RateLimitBurst:  10,
	}
}

func TestRunShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, testConfig(), zerolog.Nop()) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestRunRejectsUnknownStore(t *testing.T) {
	cfg := testConfig()
	cfg.StoreDriver = "redis"
	err := run(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open store")
}
