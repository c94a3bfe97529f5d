package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionIDKey   = "sessionID"
	DisplayNameKey = "displayName"

	sessionHeader = "X-Session-Id"
	nameHeader    = "X-Display-Name"
)

// Session extracts the client's self-issued identity from headers. There
// is no authentication behind it; the id only scopes what the client did.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(sessionHeader)
		sessionID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing or invalid " + sessionHeader + " header"})
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Set(DisplayNameKey, c.GetHeader(nameHeader))
		c.Next()
	}
}
