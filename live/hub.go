// Package live pushes standings updates to connected dashboards over
// websockets. There is a single broadcast group: every connected client sees
// every update.
package live

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Message is the envelope broadcast to clients.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const MessageStandingsUpdated = "STANDINGS_UPDATED"

type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu      sync.RWMutex
	clients map[*Client]bool

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run owns the client set. It is meant to be started once, as a goroutine,
// alongside the HTTP server.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("live client connected", slog.Int("clients", h.clientCount()))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
			}
			h.mu.Unlock()
			h.logger.Info("live client disconnected", slog.Int("clients", h.clientCount()))

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client; skip rather than block the hub.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast fans the message out to every connected client. Marshalling
// failures are logged and swallowed; a live push is best effort.
func (h *Hub) Broadcast(msg Message) {
	raw, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal live message", slog.Any("error", err))
		return
	}
	h.broadcast <- raw
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
