package websocket

import (
	"github.com/gridironhub/chat_backend/models"
)

// Event type discriminators. Inbound frames with any other type are ignored
// so newer clients can keep talking to older servers.
const (
	EventTypeChat  = "chat"
	EventTypeError = "error"
)

// InboundEvent is one frame sent by a client.
type InboundEvent struct {
	Type     string  `json:"type"`
	Username string  `json:"username"`
	Message  string  `json:"message"`
	RoomID   *string `json:"roomId,omitempty"`
}

// OutboundEvent wraps a persisted message for fan-out to every open
// connection.
type OutboundEvent struct {
	Type    string              `json:"type"`
	Message *models.ChatMessage `json:"message"`
	RoomID  *string             `json:"roomId"`
}

// ErrorEvent is sent back to the originating connection alone when its
// message was rejected; other clients never see it.
type ErrorEvent struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
