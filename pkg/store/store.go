package store

import (
	"context"
	"errors"

	"holdem-ledger-server/pkg/holdem"
)

// ErrRoomNotFound is returned when the requested room does not exist
var ErrRoomNotFound = errors.New("room not found")

// Store persists room snapshots
type Store interface {
	// Get returns the room with the given ID
	// If the room does not exist, ErrRoomNotFound is returned
	Get(ctx context.Context, id string) (*holdem.Room, error)

	// Save persists the full room snapshot, creating or replacing it
	Save(ctx context.Context, room *holdem.Room) error

	// Delete removes the room
	// Deleting a room that does not exist is not an error
	Delete(ctx context.Context, id string) error

	// List returns all known rooms
	List(ctx context.Context) ([]*holdem.Room, error)
}
