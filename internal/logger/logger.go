package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/innoscripta-checkout-register/internal/config"
)

// NewLogger creates and configures a new slog.Logger. When LOG_FILE is set the JSON
// records are appended to that file so they stay out of an interactive terminal.
func NewLogger(cfg *config.Config) *slog.Logger {
	level := ParseLevel(cfg.Logging.Level)

	var out io.Writer = os.Stdout
	var fileErr error
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fileErr = err
		} else {
			out = f
		}
	}

	logger := New(out, level)
	if fileErr != nil {
		logger.Warn("could not open log file, logging to stdout", "file", cfg.Logging.File, "error", fileErr)
	}
	logger.Info("logger initialized", "level", level)

	return logger
}

// New builds a JSON logger writing to w. Source locations are added at debug level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a config string to a slog level, defaulting to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
