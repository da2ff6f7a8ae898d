// Package logx configures the process-wide slog logger.
package logx

import (
	"io"
	"log/slog"
)

// Level returns the log level for a -v count and the -q flag. Warn by default.
func Level(verbose int, quiet bool) slog.Level {
	switch {
	case verbose >= 2:
		return slog.LevelDebug
	case verbose == 1:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	}
	return slog.LevelWarn
}

// Setup installs a text handler writing to w at the given level as the default logger.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
