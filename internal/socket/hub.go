package socket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Event is the JSON payload pushed to connected clients.
type Event struct {
	Type    string      `json:"type"` // e.g. "request.created", "request.approved"
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload,omitempty"`
}

// Hub tracks the WebSocket connection of each signed-in user, keyed by email.
type Hub struct {
	clients map[string]*websocket.Conn
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(email string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[email] = conn
	log.Debug().Str("email", email).Msg("WebSocket client registered")
}

func (h *Hub) Unregister(email string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[email]; ok {
		delete(h.clients, email)
		log.Debug().Str("email", email).Msg("WebSocket client unregistered")
	}
}

// Notify sends an event to one user. An offline recipient is not an error.
func (h *Hub) Notify(email, eventType string, payload interface{}) {
	h.mu.RLock()
	conn, ok := h.clients[email]
	h.mu.RUnlock()
	if !ok {
		return
	}

	message, err := json.Marshal(Event{Type: eventType, At: time.Now(), Payload: payload})
	if err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("failed to marshal event")
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("failed to push event")
	}
}
