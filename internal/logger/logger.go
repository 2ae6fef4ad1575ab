// Package logger configures the process-wide structured logger. Output is
// JSON on stdout; the minimum level comes from the LOG_LEVEL environment
// variable and can be changed at runtime.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var programLevel = new(slog.LevelVar)

// Logger is the shared structured logger.
var Logger *slog.Logger

func init() {
	programLevel.Set(slog.LevelInfo)

	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		if level, err := ParseLevel(levelStr); err == nil {
			programLevel.Set(level)
		}
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: programLevel,
	})
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// SetLevel sets the minimum log level.
func SetLevel(level slog.Level) {
	programLevel.Set(level)
}

// GetLevel returns the current minimum log level.
func GetLevel() slog.Level {
	return programLevel.Level()
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s (defaulting to INFO)", levelStr)
	}
}
