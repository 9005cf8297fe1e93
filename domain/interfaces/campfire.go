package interfaces

import (
	"context"

	"seyren-notifier/domain/entities"
)

// CampfireClient talks to one Campfire account.
type CampfireClient interface {
	// Rooms lists the rooms of the account in the order the service returns them.
	Rooms(ctx context.Context) ([]entities.Room, error)

	// FindRoomByName returns the room with exactly the given name, or nil if there is none.
	FindRoomByName(ctx context.Context, name string) (*entities.Room, error)

	// Join makes the API user a member of the room.
	Join(ctx context.Context, roomID int64) error

	// Speak posts a text message to the room.
	Speak(ctx context.Context, roomID int64, message string) error
}

// CampfireClientFactory builds a client bound to the given credentials.
type CampfireClientFactory func(subdomain, apiToken string) (CampfireClient, error)
