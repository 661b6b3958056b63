package config

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader     websocket.Upgrader
	WriteTimeout time.Duration
	ReadLimit    int64
}

// NewWebSocket accepts any origin; the service holds no credentials for a
// cross-site page to abuse.
func NewWebSocket() *WebSocket {
	return &WebSocket{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		WriteTimeout: 10 * time.Second,
		ReadLimit:    512,
	}
}
