package room

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// RunJanitor deletes rooms that have had no online players for at least the
// retention period. It blocks until ctx is canceled.
func (f *Floor) RunJanitor(ctx context.Context, interval, retention time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.Sweep(ctx, retention)
		}
	}
}

// Sweep performs a single cleanup pass
func (f *Floor) Sweep(ctx context.Context, retention time.Duration) {
	rooms, err := f.store.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("janitor could not list rooms")
		return
	}

	cutoff := time.Now().Add(-retention).Unix()
	for _, room := range rooms {
		if room.LastAllEmptyAt == 0 || room.LastAllEmptyAt > cutoff {
			continue
		}

		f.reapRoom(ctx, room.ID, cutoff)
	}
}

// reapRoom re-checks the room under its lock before deleting it. A player
// may have reconnected between the list and the lock.
func (f *Floor) reapRoom(ctx context.Context, roomID string, cutoff int64) {
	s := f.session(roomID)

	s.mu.Lock()
	room, err := f.store.Get(ctx, roomID)
	if err != nil || room.LastAllEmptyAt == 0 || room.LastAllEmptyAt > cutoff {
		s.mu.Unlock()
		return
	}

	if err := f.store.Delete(ctx, roomID); err != nil {
		s.mu.Unlock()
		logrus.WithError(err).WithField("room", roomID).Error("janitor could not delete room")
		return
	}
	s.mu.Unlock()

	f.mu.Lock()
	if s, ok := f.sessions[roomID]; ok && len(s.clients) == 0 {
		delete(f.sessions, roomID)
	}
	f.mu.Unlock()

	logrus.WithField("room", roomID).Info("deleted empty room")
}
