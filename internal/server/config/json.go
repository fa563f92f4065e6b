package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/campusmatch/internal/flagx"
	"github.com/dmitrijs2005/campusmatch/internal/timex"
)

// JsonConfig is the on-disk shape of the optional JSON config file.
// Durations accept "15s" or integer nanoseconds.
type JsonConfig struct {
	HTTPAddr        string         `json:"http_addr"`
	DatabaseDSN     string         `json:"database_dsn"`
	DataDir         string         `json:"data_dir"`
	IdentitySecret  string         `json:"identity_secret"`
	LogLevel        string         `json:"log_level"`
	LogFormat       string         `json:"log_format"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
	CORSOrigins     string         `json:"cors_origins"`
}

// parseJson overlays values from the file named by -c/-config. Keys that are
// absent or empty leave the current value alone. Unreadable files or invalid
// JSON panic.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay(&config.HTTPAddr, c.HTTPAddr)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.DataDir, c.DataDir)
	overlay(&config.IdentitySecret, c.IdentitySecret)
	overlay(&config.LogLevel, c.LogLevel)
	overlay(&config.LogFormat, c.LogFormat)
	overlay(&config.CORSOrigins, c.CORSOrigins)
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
