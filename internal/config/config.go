package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds the environment driven configuration of the verification API.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	VerifyDelay     time.Duration `env:"VERIFY_DELAY" envDefault:"1s"`
	EnforceIDFormat bool          `env:"ENFORCE_ID_FORMAT" envDefault:"false"`
	PublicOrigin    string        `env:"PUBLIC_ORIGIN" envDefault:"http://localhost:8080"`
	VerifyPath      string        `env:"VERIFY_PATH" envDefault:"/verify"`
	QRSize          int           `env:"QR_SIZE" envDefault:"256"`

	StoreDriver  string `env:"STORE_DRIVER" envDefault:"memory"`
	SQLiteDSN    string `env:"SQLITE_DSN" envDefault:":memory:"`
	HistoryLimit int    `env:"HISTORY_LIMIT" envDefault:"500"`

	JWTSecretKey  string        `env:"JWT_SECRET_KEY"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	AdminUsername string        `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string        `env:"ADMIN_PASSWORD"`

	RateLimitRPS   float64  `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int      `env:"RATE_LIMIT_BURST" envDefault:"10"`
	CORSOrigins    []string `env:"CORS_ALLOW_ORIGINS" envSeparator:","`
}

// Load parses environment variables into Config. Values already present in
// the environment win over .env files, which win over struct defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("STORE_DRIVER must be memory or sqlite, got %q", c.StoreDriver)
	}
	if c.VerifyDelay < 0 {
		return fmt.Errorf("VERIFY_DELAY must not be negative")
	}
	if !strings.HasPrefix(c.VerifyPath, "/") {
		return fmt.Errorf("VERIFY_PATH must start with /, got %q", c.VerifyPath)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecretKey) == "" {
			return fmt.Errorf("JWT_SECRET_KEY is required in production")
		}
		if strings.TrimSpace(c.AdminPassword) == "" {
			return fmt.Errorf("ADMIN_PASSWORD is required in production")
		}
	}
	return nil
}

// AdminEnabled reports whether operator login (and therefore insert) is available.
func (c *Config) AdminEnabled() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

// LoadEnvFiles loads .env files without overriding variables that are already set.
// Missing files are skipped. The returned error joins every file that failed to parse.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env", "../.env"}
	}
	var errs []error
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			errs = append(errs, fmt.Errorf("load %s: %w", path, err))
		}
	}
	return errors.Join(errs...)
}
