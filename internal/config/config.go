package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config holds every tunable of the process. All values come from the
// environment (optionally via a .env file) with sensible defaults; the
// database path in particular is threaded through here rather than
// living as a process-wide constant, so tests can point the store at
// ephemeral files.
type Config struct {
	// Database
	DBPath string

	// Default output paths
	ExportPath     string
	PieChartPath   string
	TrendChartPath string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		DBPath:         getEnv("TALLY_DB_PATH", "./data/tally.db"),
		ExportPath:     getEnv("TALLY_EXPORT_PATH", "expenses_export.csv"),
		PieChartPath:   getEnv("TALLY_PIE_CHART_PATH", "category_pie.png"),
		TrendChartPath: getEnv("TALLY_TREND_CHART_PATH", "monthly_trend.png"),
		LogLevel:       strings.ToLower(getEnv("TALLY_LOG_LEVEL", "info")),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DBPath, validation.Required),
		validation.Field(&c.ExportPath, validation.Required),
		validation.Field(&c.PieChartPath, validation.Required),
		validation.Field(&c.TrendChartPath, validation.Required),
		validation.Field(&c.LogLevel, validation.Required,
			validation.In("debug", "info", "warn", "error")),
	)
}

// SlogLevel maps the configured level name to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
