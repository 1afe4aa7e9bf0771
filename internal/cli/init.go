// Package cli provides common process bootstrap utilities shared by
// the command entrypoint and integration tests.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"tally/internal/config"
	"tally/internal/storage"
)

// SetupLogger initializes structured logging at the given level and
// sets it as the default logger.
func SetupLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are
// ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it. Returns
// the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStore opens the record store at the given path. Returns the
// repository or exits the process on failure.
func InitStore(logger *slog.Logger, dbPath string) *storage.Repository {
	repo, err := storage.NewRepository(dbPath)
	if err != nil {
		logger.Error("Failed to initialize record store", "error", err, "path", dbPath)
		os.Exit(1)
	}
	return repo
}
