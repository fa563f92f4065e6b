// Package config handles configuration for the server: built-in defaults,
// environment (optionally from a .env file), a JSON overlay and command-line
// flags, applied in that order and validated at the end.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the CampusMatch server.
//
// Fields:
//   - HTTPAddr: bind address of the HTTP API.
//   - DatabaseDSN: SQLite DSN (file path or ":memory:").
//   - DataDir: directory created at start-up for file-backed databases.
//   - IdentitySecret: HMAC secret used to verify identity tokens.
//   - LogLevel / LogFormat: slog level (debug|info|warn|error) and handler (json|text).
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
//   - CORSOrigins: comma-separated allowed origins, "*" for any.
type Config struct {
	HTTPAddr        string        `validate:"required,hostname_port"`
	DatabaseDSN     string        `validate:"required"`
	DataDir         string        `validate:"required"`
	IdentitySecret  string        `validate:"required"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	LogFormat       string        `validate:"oneof=json text"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	CORSOrigins     string        `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadDefaults populates Config with development defaults.
// NOTE: IdentitySecret must be overridden in production.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.DatabaseDSN = "data/campusmatch.db"
	c.DataDir = "data"
	c.IdentitySecret = "identitySecret"
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.ShutdownTimeout = 15 * time.Second
	c.CORSOrigins = "*"
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadConfig applies defaults, then the environment, then an optional JSON
// file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
