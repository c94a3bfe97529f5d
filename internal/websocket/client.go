package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/quickshare/rooms/internal/realtime"
	"github.com/quickshare/rooms/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	writeWait = 10 * time.Second

	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxFrameSize = 4 * 1024
)

// Client is one websocket connection inside one room. Which resource
// channels it receives is entirely its own choice via subscribe frames.
type Client struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	RoomID    uuid.UUID
	Conn      *websocket.Conn
	Send      chan []byte

	subs   map[realtime.Resource]realtime.Subscription
	note   *service.NoteDebouncer
	mu     sync.Mutex
	closed bool
	hub    *Hub
}

// enqueue puts one frame on the send queue unless the client is already
// torn down or the queue is full. Sends happen under the client mutex so
// they cannot race the hub closing Send.
func (c *Client) enqueue(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- data:
		return true
	default:
		return false
	}
}

// ReadPump consumes control frames from the client until the connection
// drops, then hands the client back to the hub for cleanup.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxFrameSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var frame Frame
		if err := c.Conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithError(err).WithField("client_id", c.ID).Warn("WebSocket read error")
			}
			break
		}

		switch frame.Type {
		case TypePong:
			continue
		case TypeSubscribe:
			if err := c.hub.subscribe(c, frame.Resource); err != nil {
				c.sendError(err.Error())
			}
		case TypeUnsubscribe:
			c.hub.unsubscribe(c, frame.Resource)
		case TypeNote:
			var edit struct {
				Content string `json:"content"`
			}
			if err := json.Unmarshal(frame.Payload, &edit); err != nil {
				c.sendError(ErrInvalidFrame.Error())
				continue
			}
			c.note.Push(edit.Content)
		default:
			c.sendError(ErrInvalidFrame.Error())
		}
	}
}

// WritePump drains the send queue onto the wire and keeps the connection
// alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// pumpEvents forwards one subscription's events into the send queue until
// the subscription is released.
func (c *Client) pumpEvents(res realtime.Resource, sub realtime.Subscription) {
	for event := range sub.Events() {
		payload, err := json.Marshal(event)
		if err != nil {
			continue
		}
		frame := Frame{
			Type:      TypeEvent,
			Resource:  res,
			Payload:   payload,
			Timestamp: time.Now(),
		}
		data, err := json.Marshal(frame)
		if err != nil {
			continue
		}
		if !c.enqueue(data) {
			logrus.WithFields(logrus.Fields{
				"client_id": c.ID,
				"resource":  res,
			}).Warn("Client send queue full, dropping event")
		}
	}
}

func (c *Client) sendError(msg string) {
	frame := Frame{Type: TypeError, Error: msg, Timestamp: time.Now()}
	data, err := json.Marshal(frame)
	if err != nil {
		return
	}
	c.enqueue(data)
}

// shutdown releases every fanout channel the client holds and closes the
// send queue. Unsubscribe is idempotent, so racing with an explicit
// unsubscribe frame is harmless; the closed flag stops the event pumps
// from touching Send afterwards.
func (c *Client) shutdown() {
	// Pending note edits die with the connection; there is no goodbye
	// flush for a client that just vanished.
	c.note.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	for res, sub := range c.subs {
		sub.Unsubscribe()
		delete(c.subs, res)
	}
	c.closed = true
	close(c.Send)
}
