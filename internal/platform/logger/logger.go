package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger. Services and handlers receive it through
// constructor injection rather than reaching for a package global.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
