// Package config loads the CLI's ambient configuration: the log
// directory, verbosity, and default seed. Problem-instance parameters
// (n, k, model) always arrive on argv and never pass through here or
// through an environment variable.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the CLI's ambient configuration.
type AppConfig struct {
	Seed    uint32
	LogDir  string
	Verbose bool
}

// Load resolves AppConfig from values already parsed off the command
// line, with an optional .env override for the log directory only: an
// empty logDirFlag falls back to KSTABLE_LOG_DIR, then to "logs".
func Load(seed uint32, verbose bool, logDirFlag string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found in working directory, relying on flags and defaults")
	}

	logDir := logDirFlag
	if logDir == "" {
		logDir = getEnv("KSTABLE_LOG_DIR", "logs")
	}
	logDir = filepath.Clean(logDir)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("failed to create log directory")
	}

	return &AppConfig{
		Seed:    seed,
		LogDir:  logDir,
		Verbose: verbose,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
