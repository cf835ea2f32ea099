package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger

// Init builds the process-wide JSON logger. The level comes from the
// LOG_LEVEL env var (debug, info, warn, error); unset or unknown values
// fall back to info.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	})
	Log = slog.New(handler).With("service", "interview-tracker")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
