package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans leaderboard updates out to connected clients.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]bool)}
}

func (h *Hub) AddConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[conn] = true
	slog.Debug("ws: client connected", "total", len(h.conns))
}

func (h *Hub) RemoveConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		conn.Close()
		slog.Debug("ws: client disconnected", "total", len(h.conns))
	}
}

func (h *Hub) Broadcast(message WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(message)
	if err != nil {
		slog.Error("ws: marshal error", "err", err)
		return
	}

	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.Debug("ws: write error, dropping client", "err", err)
			conn.Close()
			delete(h.conns, conn)
		}
	}
}
