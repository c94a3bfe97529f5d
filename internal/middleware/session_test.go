package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRouter() (*gin.Engine, *gin.Context) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var captured gin.Context
	r.GET("/probe", Session(), func(c *gin.Context) {
		captured = *c.Copy()
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestSessionMiddleware(t *testing.T) {
	r, captured := newSessionRouter()
	sessionID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Session-Id", sessionID.String())
	req.Header.Set("X-Display-Name", "User 17")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sessionID, captured.MustGet(SessionIDKey))
	assert.Equal(t, "User 17", captured.GetString(DisplayNameKey))
}

func TestSessionMiddlewareRejectsBadID(t *testing.T) {
	r, _ := newSessionRouter()

	for _, raw := range []string{"", "not-a-uuid"} {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		if raw != "" {
			req.Header.Set("X-Session-Id", raw)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "header %q", raw)
	}
}
