package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by parseEnv.
const EnvPrefix = "CAMPUSMATCH_"

// parseEnv overlays values from CAMPUSMATCH_* environment variables.
// A .env file in the working directory is loaded first when present;
// variables already set in the process environment win over it.
//
//	CAMPUSMATCH_HTTP_ADDR, CAMPUSMATCH_DATABASE_DSN, CAMPUSMATCH_DATA_DIR,
//	CAMPUSMATCH_IDENTITY_SECRET, CAMPUSMATCH_LOG_LEVEL, CAMPUSMATCH_LOG_FORMAT,
//	CAMPUSMATCH_SHUTDOWN_TIMEOUT (Go duration), CAMPUSMATCH_CORS_ORIGINS
//
// An unparsable duration panics, like the other loaders do on bad input.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString(&config.HTTPAddr, "HTTP_ADDR")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.DataDir, "DATA_DIR")
	setString(&config.IdentitySecret, "IDENTITY_SECRET")
	setString(&config.LogLevel, "LOG_LEVEL")
	setString(&config.LogFormat, "LOG_FORMAT")
	setString(&config.CORSOrigins, "CORS_ORIGINS")

	if v, ok := os.LookupEnv(EnvPrefix + "SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.ShutdownTimeout = d
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
		*dst = v
	}
}
