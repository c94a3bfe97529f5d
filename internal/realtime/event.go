package realtime

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ChangeType mirrors the store-level mutation that produced an event.
type ChangeType string

const (
	ChangeInsert ChangeType = "insert"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// Resource is a fanout channel kind. Every (room, resource) pair is an
// independent stream: ordering holds within one resource, never across two.
type Resource string

const (
	ResourceRoom     Resource = "room"
	ResourceMembers  Resource = "members"
	ResourceMessages Resource = "messages"
	ResourceFiles    Resource = "files"
	ResourceNotes    Resource = "notes"
	ResourceActivity Resource = "activity"
)

// Event is one change notification. Row carries the full row as JSON so
// subscribers can apply it without a follow-up read.
type Event struct {
	Type     ChangeType      `json:"type"`
	Resource Resource        `json:"resource"`
	RoomID   uuid.UUID       `json:"room_id"`
	Row      json.RawMessage `json:"row"`
}

// NewEvent marshals row into an Event. Marshal failures are programming
// errors (all rows are plain structs) and surface to the publisher.
func NewEvent(t ChangeType, res Resource, roomID uuid.UUID, row interface{}) (Event, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: t, Resource: res, RoomID: roomID, Row: raw}, nil
}
