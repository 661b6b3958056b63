package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/catan-board/internal/board"
	"github.com/vancomm/catan-board/internal/config"
	"github.com/vancomm/catan-board/internal/middleware"
)

type App struct {
	logger *slog.Logger
	router *http.ServeMux
	gen    *board.Generator
	ws     *config.WebSocket
	addr   string
}

func New(logger *slog.Logger, gen *board.Generator, addr string) *App {
	app := &App{
		logger: logger,
		router: http.NewServeMux(),
		gen:    gen,
		ws:     config.NewWebSocket(),
		addr:   addr,
	}
	app.loadRoutes()
	return app
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.logger),
		middleware.RequestID(),
		middleware.Cors(config.CorsOrigins()...),
	)
}

// Start serves until ctx is done, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", a.addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
