package logger

import (
	"log/slog"
	"os"
)

var defaultLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
	Level: slog.LevelInfo,
}))

// SetLevel replaces the default logger with one at the given level.
func SetLevel(level slog.Level) {
	defaultLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, normalize(args)...)
}

// normalize tolerates the call sites that pass a bare error (or any odd
// trailing value) instead of key/value pairs.
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}
	out := make([]any, 0, len(args)+1)
	out = append(out, args[:len(args)-1]...)
	last := args[len(args)-1]
	if err, ok := last.(error); ok {
		return append(out, "error", err)
	}
	return append(out, "detail", last)
}
