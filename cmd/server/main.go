package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vancomm/catan-board/internal/app"
	"github.com/vancomm/catan-board/internal/board"
	"github.com/vancomm/catan-board/internal/config"
)

func main() {
	logger := config.NewLogger()
	board.Log = logger

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	gen, err := config.NewGenerator()
	if err != nil {
		logger.Error("failed to set up generator", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("generator ready",
		slog.Any("variants", gen.Variants()),
		slog.Int("maxAttempts", gen.MaxAttempts()),
		slog.Bool("development", config.Development()),
	)

	a := app.New(logger, gen, config.Port())
	if err := a.Start(ctx); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
