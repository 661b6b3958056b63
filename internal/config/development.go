package config

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok || development == "" {
		return false
	}
	return development != "0"
}

// NewLogger returns a colored debug logger in development and a JSON info
// logger otherwise.
func NewLogger() *slog.Logger {
	if Development() {
		return slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}
