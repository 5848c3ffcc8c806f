package holdem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestRoom creates a room with blinds 10/20 and one connected player per
// stack, seated in order at seats 0..n-1. Player IDs are "p1".."pn".
func newTestRoom(t *testing.T, stacks ...int) *Room {
	t.Helper()

	owner := NewPlayer("p1", "Player 1", "🦊", stacks[0])
	owner.IsConnected = true

	room := NewRoom("ROOM01", owner, Options{
		SmallBlind:   10,
		InitialChips: 1000,
	})

	for i, stack := range stacks {
		id := fmt.Sprintf("p%d", i+1)
		if i > 0 {
			p := NewPlayer(id, fmt.Sprintf("Player %d", i+1), "🐼", stack)
			p.IsConnected = true
			room.AddPlayer(p)
		}

		_, err := room.Sit(id, i)
		require.NoError(t, err)
	}

	return room
}

// totalChips is the conserved quantity while a hand is in progress
func totalChips(r *Room) int {
	total := 0
	for _, p := range r.Players {
		total += p.Chips
	}

	if r.Hand != nil {
		total += r.Hand.Pot
	}

	return total
}

func playerIDs(players []*Player) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}

	return ids
}
