package models

import (
	"time"
)

// Game is one scheduled league game. Its id, rendered as a string, is the
// room id chat clients scope their messages by.
type Game struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Week      int       `gorm:"not null" json:"week"`
	HomeTeam  string    `gorm:"size:255;not null" json:"homeTeam"`
	AwayTeam  string    `gorm:"size:255;not null" json:"awayTeam"`
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
	Kickoff   time.Time `json:"kickoff"`
	Final     bool      `json:"final"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
