package ws

import (
	"encoding/json"
	"sync"

	"charity_farm/internal/logger"
)

// Hub is a broadcast-only fan-out of economy events (donations, project
// completions) to every connected client.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	logger.Debug("ws client registered", "user_id", c.UserID)
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
	}
	h.mu.Unlock()
	logger.Debug("ws client unregistered", "user_id", c.UserID)
}

// Broadcast sends the event to all clients. Slow clients with a full send
// buffer are skipped rather than blocking the caller.
func (h *Hub) Broadcast(event interface{}) {
	msg, err := json.Marshal(event)
	if err != nil {
		logger.Error("ws marshal event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
