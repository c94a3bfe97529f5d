package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/quickshare/rooms/internal/service"
	ws "github.com/quickshare/rooms/internal/websocket"
)

// WebSocketHandler upgrades connections and binds each one to a room.
// Clients then pick fanout channels with subscribe frames.
type WebSocketHandler struct {
	hub      *ws.Hub
	rooms    *service.RoomService
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(hub *ws.Hub, rooms *service.RoomService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:   hub,
		rooms: rooms,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWebSocket expects ?room=<id>&session=<id>. Identity comes from
// query params because browsers cannot set headers on websocket dials.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	roomID, err := uuid.Parse(c.Query("room"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}
	sessionID, err := uuid.Parse(c.Query("session"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	if _, err := h.rooms.GetActive(c.Request.Context(), roomID); err != nil {
		respondServiceError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := h.hub.NewConn(conn, roomID, sessionID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
