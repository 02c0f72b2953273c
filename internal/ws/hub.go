package ws

import (
	"encoding/json"
	"sync"
	"time"

	"family_tasks/internal/logger"
)

// Hub fans change events out to connected clients. A client whose send
// buffer is full is dropped so publishers never block.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	closed  bool
	now     func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		now:     time.Now,
	}
}

func (h *Hub) Register(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	logger.Debug("ws client registered", "user_id", c.UserID, "clients", len(h.clients))
	return true
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(c)
}

// remove closes the client's send channel once; caller holds mu
func (h *Hub) remove(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.Send)
}

func (h *Hub) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = h.now().UTC()
	}
	msg, err := json.Marshal(ev)
	if err != nil {
		logger.Error("ws marshal event", "type", ev.Type, "error", err)
		return
	}

	var slow []*Client
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	if len(slow) == 0 {
		return
	}
	h.mu.Lock()
	for _, c := range slow {
		logger.Warn("ws client too slow, dropping", "user_id", c.UserID)
		h.remove(c)
	}
	h.mu.Unlock()
}

// DisconnectSession drops every client opened with the session and reports how many.
func (h *Hub) DisconnectSession(sessionID string) int {
	if sessionID == "" {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for c := range h.clients {
		if c.SessionID == sessionID {
			h.remove(c)
			n++
		}
	}
	return n
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		h.remove(c)
	}
}
