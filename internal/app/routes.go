package app

import (
	"net/http"

	"github.com/vancomm/catan-board/internal/config"
	"github.com/vancomm/catan-board/internal/handlers"
)

func (a *App) loadRoutes() {
	boards := handlers.NewBoardHandler(a.logger, a.gen, a.ws)

	base := config.BasePath()
	route := func(method, path string, h http.HandlerFunc) {
		a.router.HandleFunc(method+" "+base+path, h)
	}

	route(http.MethodGet, "/status", handlers.Status)
	route(http.MethodGet, "/variants", boards.Variants)
	route(http.MethodPost, "/board", boards.NewBoard)
	route(http.MethodPost, "/board/validate", boards.Validate)
	route(http.MethodGet, "/board/connect", boards.ConnectWS)
}
