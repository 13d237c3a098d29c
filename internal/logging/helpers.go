package logging

import (
	"context"
	"log/slog"
)

// Debug, Info, Warn and Error are no-ops on a nil logger, so services can
// be built without one.
func Debug(logger *slog.Logger, msg string, args ...any) {
	logAt(logger, slog.LevelDebug, msg, args)
}

func Info(logger *slog.Logger, msg string, args ...any) {
	logAt(logger, slog.LevelInfo, msg, args)
}

func Warn(logger *slog.Logger, msg string, args ...any) {
	logAt(logger, slog.LevelWarn, msg, args)
}

// Error attaches err under the "error" key when it is non-nil.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, slog.Any("error", err))
	}
	logAt(logger, slog.LevelError, msg, args)
}

func logAt(logger *slog.Logger, level slog.Level, msg string, args []any) {
	if logger == nil {
		return
	}
	logger.Log(context.Background(), level, msg, args...)
}
