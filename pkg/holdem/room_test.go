package holdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom_defaultBigBlind(t *testing.T) {
	a := assert.New(t)

	owner := NewPlayer("p1", "Player 1", "🦊", 1000)
	room := NewRoom("ROOM01", owner, Options{SmallBlind: 25, InitialChips: 1000})
	a.Equal(50, room.BigBlind)

	room = NewRoom("ROOM02", owner, Options{SmallBlind: 25, BigBlind: 75, InitialChips: 1000})
	a.Equal(75, room.BigBlind)
}

func TestRoom_Sit(t *testing.T) {
	a := assert.New(t)

	owner := NewPlayer("p1", "Player 1", "🦊", 1000)
	room := NewRoom("ROOM01", owner, Options{SmallBlind: 10, InitialChips: 1000})

	_, err := room.Sit("p1", -1)
	a.ErrorIs(err, ErrInvalidSeat)
	_, err = room.Sit("p1", NumSeats)
	a.ErrorIs(err, ErrInvalidSeat)
	_, err = room.Sit("ghost", 0)
	a.ErrorIs(err, ErrPlayerNotFound)

	ev, err := room.Sit("p1", 3)
	a.NoError(err)
	a.Equal("sit", ev.Name)
	a.Equal(3, owner.Seat)
	a.Equal(StatusActive, owner.Status)

	p2 := NewPlayer("p2", "Player 2", "🐼", 1000)
	room.AddPlayer(p2)
	_, err = room.Sit("p2", 3)
	a.ErrorIs(err, ErrSeatTaken)

	// switching seats vacates the old one
	_, err = room.Sit("p1", 5)
	a.NoError(err)
	a.Equal("", room.Seats[3])
	a.Equal("p1", room.Seats[5])

	room.Status = RoomPlaying
	_, err = room.Sit("p2", 0)
	a.ErrorIs(err, ErrGameInProgress)
}

func TestRoom_Stand(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000)

	ev, err := room.Stand("p2")
	a.NoError(err)
	a.Equal("stand", ev.Name)

	p2 := room.Players["p2"]
	a.Equal(-1, p2.Seat)
	a.Equal(StatusSittingOut, p2.Status)
	a.Equal("", room.Seats[1])

	room.Status = RoomPlaying
	_, err = room.Stand("p1")
	a.ErrorIs(err, ErrGameInProgress)
}

func TestRoom_ToggleReady_startsHand(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000)

	ev, err := room.ToggleReady("p1")
	a.NoError(err)
	a.Equal("ready_toggle", ev.Name)
	a.Equal(true, ev.Details["ready"])
	a.Equal(RoomWaiting, room.Status)

	// un-ready and back
	_, err = room.ToggleReady("p1")
	a.NoError(err)
	a.False(room.Players["p1"].Ready)
	_, err = room.ToggleReady("p1")
	a.NoError(err)

	ev, err = room.ToggleReady("p2")
	a.NoError(err)
	a.Equal("hand_started", ev.Name)
	a.Equal(RoomPlaying, room.Status)
	a.Equal(1, room.HandNumber)
}

func TestRoom_ToggleReady_requiresSeat(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000)

	p3 := NewPlayer("p3", "Player 3", "🐯", 1000)
	room.AddPlayer(p3)

	_, err := room.ToggleReady("p3")
	a.ErrorIs(err, ErrMustSitFirst)
}

func TestRoom_RemovePlayer_ownerHandOff(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000)
	a.Equal("p1", room.OwnerID)

	a.NoError(room.RemovePlayer("p1"))
	a.Equal("p2", room.OwnerID)
	a.Equal("", room.Seats[0])

	room.Status = RoomPlaying
	a.ErrorIs(room.RemovePlayer("p2"), ErrGameInProgress)
}

func TestRoom_snapshotRoundTrip(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000, 1000)
	require.NotNil(t, room.StartHand())
	_, err := room.ProcessAction("p1", ActionRaise, 60)
	require.NoError(t, err)

	data, err := json.Marshal(room)
	require.NoError(t, err)

	var restored Room
	require.NoError(t, json.Unmarshal(data, &restored))

	a.Equal(room.HandNumber, restored.HandNumber)
	a.Equal(room.Hand.CurrentBet, restored.Hand.CurrentBet)
	a.Equal(room.Hand.CurrentPlayerID, restored.Hand.CurrentPlayerID)
	a.Equal(room.Players["p1"].Chips, restored.Players["p1"].Chips)
	a.Equal(room.Seats, restored.Seats)

	// the restored snapshot keeps playing
	_, err = restored.ProcessAction("p2", ActionCall, 0)
	a.NoError(err)
}
