// Package session generates the client-local identity a browser keeps for
// the duration of its session: a random session id and a throwaway
// display name. There is no account behind either.
package session

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// Identity is what a client persists and replays on every call.
type Identity struct {
	SessionID   uuid.UUID `json:"session_id"`
	DisplayName string    `json:"display_name"`
}

// NewIdentity mints a fresh session id and a "User N" display name.
func NewIdentity() Identity {
	return Identity{
		SessionID:   uuid.New(),
		DisplayName: fmt.Sprintf("User %d", rand.Intn(9999)+1),
	}
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count the way the room UI shows it,
// e.g. "10.5 MB".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	i := int(math.Log(float64(bytes)) / math.Log(1024))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(i))
	s := fmt.Sprintf("%.2f", value)
	// Trim trailing zeros so 10.00 reads as 10.
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s + " " + sizeUnits[i]
}
