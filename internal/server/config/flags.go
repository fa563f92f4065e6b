package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/campusmatch/internal/flagx"
)

// parseFlags overlays values from command-line flags.
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-d string   SQLite DSN
//	-w string   data directory
//	-s string   identity token secret
//	-l string   log level
//	-f string   log format
//	-t int      shutdown timeout, seconds
//	-o string   allowed CORS origins
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-w", "-s", "-l", "-f", "-t", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DataDir, "w", config.DataDir, "data directory")
	fs.StringVar(&config.IdentitySecret, "s", config.IdentitySecret, "identity token secret")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.StringVar(&config.CORSOrigins, "o", config.CORSOrigins, "allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
