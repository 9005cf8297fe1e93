package entities

import (
	"time"
)

// Room is a Campfire chat room.
type Room struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Topic           string    `json:"topic,omitempty"`
	MembershipLimit int       `json:"membership_limit,omitempty"`
	Locked          bool      `json:"locked,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}
