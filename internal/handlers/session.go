package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickshare/rooms/pkg/session"
)

type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// CreateSession mints a throwaway identity for a client that has none.
// The client persists it for the session's duration and replays it in
// headers; the server keeps nothing.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	c.JSON(http.StatusCreated, session.NewIdentity())
}
