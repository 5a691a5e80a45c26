package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans play-session events (draw progress, reveals, the accept countdown
// and the final redirect) out to every socket watching a session token.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(token string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sessions[token] == nil {
		h.sessions[token] = make(map[*websocket.Conn]bool)
	}
	h.sessions[token][conn] = true
	log.Printf("ws: client connected to session %s (total: %d)", token, len(h.sessions[token]))
}

func (h *Hub) RemoveConnection(token string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.sessions[token]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.sessions, token)
		}
		log.Printf("ws: client disconnected from session %s", token)
	}
}

// Broadcast takes the write lock: failed writes evict the dead
// connection from the session map.
func (h *Hub) Broadcast(token string, message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.sessions[token]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}
