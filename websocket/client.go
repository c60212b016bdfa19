package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/gridironhub/chat_backend/store"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096
)

// Client represents one open websocket connection.
type Client struct {
	id    string
	hub   *Hub
	conn  *websocket.Conn
	store store.MessageStore
	send  chan []byte

	// Guards closed; both the hub goroutine and the read pump deliver
	// through trySend, so the closed check and the send itself must
	// happen under one lock.
	mu     sync.Mutex
	closed bool
}

func newClient(hub *Hub, conn *websocket.Conn, messages store.MessageStore) *Client {
	return &Client{
		id:    uuid.NewString(),
		hub:   hub,
		conn:  conn,
		store: messages,
		send:  make(chan []byte, 256),
	}
}

// readPump pumps frames from the websocket connection through the store to
// the hub. One goroutine per connection, so a slow store call stalls only
// this client.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("client_id", c.id).Msg("read error")
			}
			break
		}

		c.handleFrame(frame)
	}
}

// handleFrame runs the persist-then-broadcast pipeline for one inbound
// frame. A message is never broadcast unless the store accepted it first.
func (c *Client) handleFrame(frame []byte) {
	var event InboundEvent
	if err := json.Unmarshal(frame, &event); err != nil {
		log.Warn().Err(err).Str("client_id", c.id).Msg("unparseable frame")
		return
	}

	if event.Type != EventTypeChat {
		return
	}

	saved, err := c.store.SaveMessage(context.Background(), event.Username, event.Message, event.RoomID)
	if err != nil {
		log.Warn().Err(err).Str("client_id", c.id).Msg("message rejected")
		c.sendError("message rejected")
		return
	}

	out, err := json.Marshal(OutboundEvent{
		Type:    EventTypeChat,
		Message: saved,
		RoomID:  saved.RoomID,
	})
	if err != nil {
		log.Error().Err(err).Msg("error marshaling outbound event")
		return
	}

	c.hub.Broadcast(out)
}

// trySend queues a frame for the write pump. It reports false when the
// client's buffer is full or the hub has already closed this client; it
// never panics after eviction.
func (c *Client) trySend(frame []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// closeSend marks the client closed and shuts the write pump down. Safe to
// call more than once.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// sendError notifies this connection alone that its last message was
// dropped. Best effort: a client evicted mid-flight simply misses it.
func (c *Client) sendError(reason string) {
	frame, err := json.Marshal(ErrorEvent{Type: EventTypeError, Error: reason})
	if err != nil {
		return
	}

	c.trySend(frame)
}

// writePump pumps frames from the hub to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(frame)

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
