package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/quickshare/rooms/internal/models"
	"github.com/quickshare/rooms/internal/realtime"
	"github.com/quickshare/rooms/internal/service"
	"github.com/sirupsen/logrus"
)

// FrameType tags the JSON frames exchanged with a connected client.
type FrameType string

const (
	// client → server
	TypeSubscribe   FrameType = "subscribe"
	TypeUnsubscribe FrameType = "unsubscribe"
	TypeNote        FrameType = "note"
	TypePong        FrameType = "pong"

	// server → client
	TypeEvent FrameType = "event"
	TypePing  FrameType = "ping"
	TypeError FrameType = "error"
)

// Frame is the wire format on the websocket. For event frames, Payload
// carries the fanout Event verbatim.
type Frame struct {
	Type      FrameType         `json:"type"`
	Resource  realtime.Resource `json:"resource,omitempty"`
	Payload   json.RawMessage   `json:"payload,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

var validResources = map[realtime.Resource]bool{
	realtime.ResourceRoom:     true,
	realtime.ResourceMembers:  true,
	realtime.ResourceMessages: true,
	realtime.ResourceFiles:    true,
	realtime.ResourceNotes:    true,
	realtime.ResourceActivity: true,
}

// NoteWriter persists note overwrites pushed over the wire. Satisfied by
// service.NoteService.
type NoteWriter interface {
	Update(ctx context.Context, roomID uuid.UUID, content string) (*models.SharedNote, error)
}

// Hub owns all websocket clients and bridges the fanout bus to them.
// Each client picks its own set of (room, resource) channels; the hub
// holds one bus subscription per pick and pumps events into the client's
// send queue. Note edits travel the other way: each client debounces its
// pushes and the hub persists the winner through the NoteWriter.
type Hub struct {
	bus   realtime.Bus
	notes NoteWriter

	clients map[uuid.UUID]*Client
	rooms   map[uuid.UUID]map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(bus realtime.Bus, notes NoteWriter) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		bus:        bus,
		notes:      notes,
		clients:    make(map[uuid.UUID]*Client),
		rooms:      make(map[uuid.UUID]map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		}
	}
}

func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, client := range h.clients {
		client.shutdown()
		client.Conn.Close()
	}
	h.clients = make(map[uuid.UUID]*Client)
	h.rooms = make(map[uuid.UUID]map[uuid.UUID]*Client)
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ConnectedCount reports live connections for a room. This is presence in
// the transport sense only; the durable roster never shrinks.
func (h *Hub) ConnectedCount(roomID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client
	if _, ok := h.rooms[client.RoomID]; !ok {
		h.rooms[client.RoomID] = make(map[uuid.UUID]*Client)
	}
	h.rooms[client.RoomID][client.ID] = client

	logrus.WithFields(logrus.Fields{
		"client_id":  client.ID,
		"session_id": client.SessionID,
		"room_id":    client.RoomID,
	}).Info("Client connected")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}

	// Leaving releases every fanout channel the client held. A pending
	// debounced note edit on the client side is not flushed here.
	client.shutdown()

	delete(h.clients, client.ID)
	if room, ok := h.rooms[client.RoomID]; ok {
		delete(room, client.ID)
		if len(room) == 0 {
			delete(h.rooms, client.RoomID)
		}
	}

	logrus.WithFields(logrus.Fields{
		"client_id": client.ID,
		"room_id":   client.RoomID,
	}).Info("Client disconnected")
}

// subscribe attaches the client to one (room, resource) fanout channel
// and starts pumping its events into the send queue.
func (h *Hub) subscribe(client *Client, res realtime.Resource) error {
	if !validResources[res] {
		return ErrUnknownResource
	}

	client.mu.Lock()
	defer client.mu.Unlock()
	if _, ok := client.subs[res]; ok {
		return ErrAlreadySubscribed
	}

	sub, err := h.bus.Subscribe(h.ctx, client.RoomID, res)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"room_id":  client.RoomID,
			"resource": res,
		}).Error("Failed to subscribe to fanout channel")
		return ErrSubscriptionFailed
	}
	client.subs[res] = sub

	go client.pumpEvents(res, sub)
	return nil
}

func (h *Hub) unsubscribe(client *Client, res realtime.Resource) {
	client.mu.Lock()
	defer client.mu.Unlock()
	if sub, ok := client.subs[res]; ok {
		sub.Unsubscribe()
		delete(client.subs, res)
	}
}

// NewConn wraps an upgraded connection into a Client bound to one room.
// Each client gets its own note debouncer; disconnecting mid-type drops
// whatever the window was still holding.
func (h *Hub) NewConn(conn *websocket.Conn, roomID, sessionID uuid.UUID) *Client {
	client := &Client{
		ID:        uuid.New(),
		SessionID: sessionID,
		RoomID:    roomID,
		Conn:      conn,
		Send:      make(chan []byte, 256),
		subs:      make(map[realtime.Resource]realtime.Subscription),
		hub:       h,
	}
	client.note = service.NewNoteDebouncer(service.DefaultDebounceWindow, func(ctx context.Context, content string) {
		if _, err := h.notes.Update(ctx, roomID, content); err != nil {
			logrus.WithError(err).WithField("room_id", roomID).
				Warn("Failed to persist debounced note edit")
		}
	})
	return client
}
