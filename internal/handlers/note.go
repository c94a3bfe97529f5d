package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickshare/rooms/internal/handlers/dto"
	"github.com/quickshare/rooms/internal/service"
)

type NoteHandler struct {
	notes *service.NoteService
}

func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	note, err := h.notes.Get(c.Request.Context(), roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// UpdateNote overwrites the shared document. The caller is expected to
// debounce; whatever arrives here is persisted verbatim, last write wins.
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.notes.Update(c.Request.Context(), roomID, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}
