package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"holdem-ledger-server/pkg/holdem"
)

// Postgres stores room snapshots as JSONB rows
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a postgres-backed store
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Get returns the room with the given ID
func (p *Postgres) Get(ctx context.Context, id string) (*holdem.Room, error) {
	const query = `SELECT data FROM rooms WHERE id = $1`

	var data []byte
	if err := p.db.QueryRowContext(ctx, query, id).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRoomNotFound
		}

		return nil, err
	}

	var room holdem.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}

	return &room, nil
}

// Save persists the full room snapshot
func (p *Postgres) Save(ctx context.Context, room *holdem.Room) error {
	const query = `
INSERT INTO rooms (id, data)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated = (NOW() AT TIME ZONE 'utc')`

	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	_, err = p.db.ExecContext(ctx, query, room.ID, data)
	return err
}

// Delete removes the room
func (p *Postgres) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM rooms WHERE id = $1`
	_, err := p.db.ExecContext(ctx, query, id)
	return err
}

// List returns all known rooms
func (p *Postgres) List(ctx context.Context) ([]*holdem.Room, error) {
	const query = `SELECT data FROM rooms ORDER BY created`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*holdem.Room
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}

		var room holdem.Room
		if err := json.Unmarshal(data, &room); err != nil {
			return nil, err
		}

		rooms = append(rooms, &room)
	}

	return rooms, rows.Err()
}
