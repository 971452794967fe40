package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/agewell-backend/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default. Format "text" adds source locations for local development; any
// other value gives JSON.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(strings.TrimSpace(cfg.Format), "text")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("app", "agewell"), slog.String("version", Version))
}

// parseLevel accepts slog level names ("debug", "WARN", "info+2");
// anything else falls back to info.
func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
