package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs a JSON logger on stdout as the slog default.
func Setup(service, level string) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)})
	l := slog.New(h).With("service", service)
	slog.SetDefault(l)
	return l
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
