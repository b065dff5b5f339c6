package app

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// LogToStderr sends logs to stderr instead of the platform log file
	LogToStderr bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		LogToStderr: false,
	}
}

// ConfigFromEnv creates a configuration from environment variables.
// Reads FEATUREDESK_DEBUG and FEATUREDESK_LOG_STDERR.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if debugStr := os.Getenv("FEATUREDESK_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if stderrStr := os.Getenv("FEATUREDESK_LOG_STDERR"); stderrStr != "" {
		if v, err := strconv.ParseBool(stderrStr); err == nil {
			cfg.LogToStderr = v
		}
	}

	return cfg
}

// LoadDotEnv loads the file named by ENV_FILE (default ".env") into the
// process environment. A missing file is not an error; it returns false.
func LoadDotEnv(logger *slog.Logger) bool {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		logger.Debug("no env file loaded, using process environment",
			slog.String("file", envFile),
		)
		return false
	}
	logger.Debug("env file loaded", slog.String("file", envFile))
	return true
}
