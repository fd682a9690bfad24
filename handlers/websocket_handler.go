package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/hackovate/judging-portal/live"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Judging happens on an open venue network, so any origin may
		// subscribe to the standings feed.
		return true
	},
}

type WebSocketHandler struct {
	hub    *live.Hub
	logger *slog.Logger
}

func NewWebSocketHandler(hub *live.Hub, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, logger: logger}
}

// ServeStandings upgrades the connection and subscribes it to standings
// broadcasts. The feed is push-only.
func (h *WebSocketHandler) ServeStandings(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error to the client.
		h.logger.Error("websocket upgrade failed", slog.Any("error", err))
		return
	}

	live.NewClient(h.hub, conn, h.logger)
}
