package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shuhuiluo/trivia-game/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleLeaderboard godoc
// @Summary      WebSocket feed of leaderboard updates
// @Description  Pushes the refreshed top ten after every resolved round
// @Tags         websocket
// @Router       /ws/leaderboard [get]
func (h *WSHandler) HandleLeaderboard(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade error", "err", err)
		return
	}

	h.hub.AddConnection(conn)
	defer h.hub.RemoveConnection(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
