// Package logging builds the structured logger used by the multigrid CLI.
//
// It is a thin layer over log/slog: a Level type with parsing for flag
// values, and a Config selecting text or JSON output on a writer.
//
//	logger, err := logging.New(logging.Config{Level: logging.LevelDebug})
//	logger.Debug("grid built", "shape", g.Shape(), "size", g.Size())
//
// Library packages never log; only cmd/ does.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents log severity levels, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug is for development troubleshooting.
	LevelDebug Level = iota
	// LevelInfo is for normal operational messages.
	LevelInfo
	// LevelWarn is for recoverable surprises.
	LevelWarn
	// LevelError is for failed operations.
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// toSlogLevel converts Level to slog.Level; unknown levels map to Info.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses a case-insensitive level name as given on the command line.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Config configures the logger. The zero value writes Info+ text to stderr.
type Config struct {
	// Level sets the minimum level; lower messages are discarded.
	Level Level
	// JSON selects slog's JSON handler instead of the text handler.
	JSON bool
	// Writer receives the output. Default: os.Stderr.
	Writer io.Writer
	// Service, when set, is attached to every record as "service".
	Service string
}

// New returns a *slog.Logger for cfg.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, hopts)
	} else {
		h = slog.NewTextHandler(w, hopts)
	}
	logger := slog.New(h)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}

	return logger
}
