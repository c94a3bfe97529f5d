package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickshare/rooms/internal/handlers/dto"
	"github.com/quickshare/rooms/internal/service"
)

type MessageHandler struct {
	messages *service.MessageService
}

func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	sessionID, displayName := sessionFrom(c)
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.messages.Send(c.Request.Context(), roomID, sessionID, displayName, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ListMessages returns the full history, oldest first.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	messages, err := h.messages.List(c.Request.Context(), roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
