package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSeatAfter(t *testing.T) {
	a := assert.New(t)

	seats := []int{2, 5, 9}
	a.Equal(5, nextSeatAfter(seats, 2))
	a.Equal(9, nextSeatAfter(seats, 5))
	a.Equal(2, nextSeatAfter(seats, 9))
	a.Equal(2, nextSeatAfter(seats, 11))
	a.Equal(2, nextSeatAfter(seats, -1))
	a.Equal(-1, nextSeatAfter(nil, 0))
}

func TestRoom_SeatedPlayers_order(t *testing.T) {
	a := assert.New(t)

	owner := NewPlayer("p1", "Player 1", "🦊", 1000)
	owner.IsConnected = true
	room := NewRoom("ROOM01", owner, Options{SmallBlind: 10, InitialChips: 1000})

	p2 := NewPlayer("p2", "Player 2", "🐼", 1000)
	p2.IsConnected = true
	room.AddPlayer(p2)

	p3 := NewPlayer("p3", "Player 3", "🐯", 1000)
	room.AddPlayer(p3)

	// seat out of order; iteration must follow seat index, not join order
	_, err := room.Sit("p2", 7)
	a.NoError(err)
	_, err = room.Sit("p1", 3)
	a.NoError(err)
	_, err = room.Sit("p3", 5)
	a.NoError(err)

	a.Equal([]string{"p1", "p3", "p2"}, playerIDs(room.SeatedPlayers()))
	a.Equal([]string{"p1", "p2"}, playerIDs(room.connectedSeatedPlayers()))
}

func TestRoom_activeAndActionable(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000, 1000, 1000)
	room.Players["p2"].Status = StatusFolded
	room.Players["p3"].Status = StatusAllIn

	a.Equal([]string{"p1", "p3", "p4"}, playerIDs(room.ActivePlayers()))
	a.Equal([]string{"p1", "p4"}, playerIDs(room.ActionablePlayers()))
}

func TestRoom_nextDealerSeat(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000, 1000)
	seated := room.SeatedPlayers()

	// no prior dealer: lowest seated seat
	a.Equal(0, room.nextDealerSeat(seated))

	room.Hand = newHand(0)
	a.Equal(1, room.nextDealerSeat(seated))

	// wraps past the highest seat
	room.Hand = newHand(2)
	a.Equal(0, room.nextDealerSeat(seated))
}

func TestRoom_buildActionOrder(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000, 1000, 1000)

	a.Equal([]string{"p3", "p4", "p1", "p2"}, room.buildActionOrder(1))
	a.Equal([]string{"p1", "p2", "p3", "p4"}, room.buildActionOrder(3))

	// folded and all-in players drop out but the rotation is preserved
	room.Players["p3"].Status = StatusFolded
	room.Players["p1"].Status = StatusAllIn
	a.Equal([]string{"p4", "p2"}, room.buildActionOrder(1))
}
