package models

import (
	"time"
)

// ChatMessage is a single chat post. Records are append-only: nothing in the
// chat backend updates or deletes them. A nil RoomID means the message
// belongs to the global room.
type ChatMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Username  string    `gorm:"size:100;not null" json:"username"`
	Message   string    `gorm:"size:500;not null" json:"message"`
	RoomID    *string   `gorm:"size:255;index" json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
}
