package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickshare/rooms/internal/handlers/dto"
	"github.com/quickshare/rooms/internal/models"
	"github.com/quickshare/rooms/internal/service"
	ws "github.com/quickshare/rooms/internal/websocket"
)

type RoomHandler struct {
	rooms   *service.RoomService
	members *service.MemberService
	hub     *ws.Hub
}

func NewRoomHandler(rooms *service.RoomService, members *service.MemberService, hub *ws.Hub) *RoomHandler {
	return &RoomHandler{rooms: rooms, members: members, hub: hub}
}

// CreateRoom mints a room and returns its shareable code.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	sessionID, displayName := sessionFrom(c)

	room, err := h.rooms.Create(c.Request.Context(), sessionID, displayName)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, formatRoomResponse(room, sessionID == room.CreatorSessionID))
}

// GetRoom resolves a code. A closed room is still returned, flagged
// inactive, so the client can show its closed view.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	sessionID, _ := sessionFrom(c)

	room, err := h.rooms.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatRoomResponse(room, sessionID == room.CreatorSessionID))
}

// JoinRoom registers the session in the room's roster.
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	sessionID, _ := sessionFrom(c)
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	var req dto.JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.members.Join(c.Request.Context(), roomID, sessionID, req.DisplayName)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListMembers returns the roster: everyone who joined this lifetime,
// whether or not they are still connected. The connected count is the
// transport-level view, so the client can show "3 of 7 here now".
func (h *RoomHandler) ListMembers(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	members, err := h.members.Roster(c.Request.Context(), roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members":   members,
		"connected": h.hub.ConnectedCount(roomID),
	})
}

// CloseRoom triggers teardown. Creator only; repeating it is harmless.
func (h *RoomHandler) CloseRoom(c *gin.Context) {
	sessionID, _ := sessionFrom(c)
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	if err := h.rooms.Close(c.Request.Context(), roomID, sessionID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "room closed, all data deleted"})
}

func formatRoomResponse(room *models.Room, isCreator bool) dto.RoomResponse {
	return dto.RoomResponse{
		ID:        room.ID,
		Code:      room.Code,
		IsActive:  room.IsActive,
		IsCreator: isCreator,
		CreatedAt: room.CreatedAt,
	}
}
