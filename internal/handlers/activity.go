package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quickshare/rooms/internal/service"
)

type ActivityHandler struct {
	activity *service.ActivityService
}

func NewActivityHandler(activity *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// ListActivity returns the newest entries first. Live tail arrives over
// the websocket; the client prepends and keeps the same cap.
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	limit := 0
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			limit = parsed
		}
	}

	events, err := h.activity.List(c.Request.Context(), roomID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": events})
}
