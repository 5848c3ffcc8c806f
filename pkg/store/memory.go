package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"holdem-ledger-server/pkg/holdem"
)

// Memory is an in-memory store suitable for testing
// Rooms are stored as JSON so callers never share pointers with the store
type Memory struct {
	mu    sync.RWMutex
	rooms map[string][]byte
}

// NewMemory returns an in-memory store
func NewMemory() *Memory {
	return &Memory{
		rooms: make(map[string][]byte),
	}
}

// Get returns the room with the given ID
func (m *Memory) Get(_ context.Context, id string) (*holdem.Room, error) {
	m.mu.RLock()
	data, ok := m.rooms[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrRoomNotFound
	}

	var room holdem.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}

	return &room, nil
}

// Save persists the full room snapshot
func (m *Memory) Save(_ context.Context, room *holdem.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.rooms[room.ID] = data
	m.mu.Unlock()

	return nil
}

// Delete removes the room
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.rooms, id)
	m.mu.Unlock()

	return nil
}

// List returns all known rooms ordered by ID
func (m *Memory) List(_ context.Context) ([]*holdem.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.rooms))
	for id := range m.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rooms := make([]*holdem.Room, 0, len(ids))
	for _, id := range ids {
		var room holdem.Room
		if err := json.Unmarshal(m.rooms[id], &room); err != nil {
			return nil, err
		}

		rooms = append(rooms, &room)
	}

	return rooms, nil
}
