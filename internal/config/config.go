package config

import (
	"flag"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Values come from the environment
// (after loading .env if present), with flags overriding.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"ADDR" envDefault:":8080"`

	// DBPath is the SQLite database file path.
	DBPath string `env:"DB_PATH" envDefault:"totetracker.sqlite3"`

	// BaseURL is the externally reachable application URL embedded in QR
	// code payloads.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// QRDir is the on-disk cache directory for generated QR PNGs.
	QRDir string `env:"QR_DIR" envDefault:"qrcodes"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Environment selects the logging profile (development or production).
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// Load builds the configuration from .env, environment variables, and flags,
// in increasing priority.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("totetracker", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to SQLite database file")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "external base URL embedded in QR codes")
	fs.StringVar(&cfg.QRDir, "qr-dir", cfg.QRDir, "directory for cached QR images")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}
