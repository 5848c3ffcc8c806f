package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom_StartHand_headsUp(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000)
	ev := room.StartHand()
	require.NotNil(t, ev)

	a.Equal(RoomPlaying, room.Status)
	a.Equal(1, room.HandNumber)

	hand := room.Hand
	require.NotNil(t, hand)
	a.Equal(PhasePreflop, hand.Phase)

	// heads-up: the dealer posts the small blind
	a.Equal(0, hand.DealerSeat)
	a.Equal(0, hand.SmallBlindSeat)
	a.Equal(1, hand.BigBlindSeat)

	a.Equal(990, room.Players["p1"].Chips)
	a.Equal(980, room.Players["p2"].Chips)
	a.Equal(30, hand.Pot)
	a.Equal(20, hand.CurrentBet)

	// action starts on the small blind
	a.Equal("p1", hand.CurrentPlayerID)
}

func TestRoom_StartHand_threeHanded(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000, 1000)
	require.NotNil(t, room.StartHand())

	hand := room.Hand
	a.Equal(0, hand.DealerSeat)
	a.Equal(1, hand.SmallBlindSeat)
	a.Equal(2, hand.BigBlindSeat)

	a.Equal(990, room.Players["p2"].Chips)
	a.Equal(980, room.Players["p3"].Chips)
	a.Equal(30, hand.Pot)

	// first to act is under the gun, after the big blind
	a.Equal("p1", hand.CurrentPlayerID)
	a.Equal([]string{"p1", "p2", "p3"}, hand.ActionOrder)
}

func TestRoom_StartHand_notEnoughPlayers(t *testing.T) {
	a := assert.New(t)

	owner := NewPlayer("p1", "Player 1", "🦊", 1000)
	owner.IsConnected = true
	room := NewRoom("ROOM01", owner, Options{SmallBlind: 10, InitialChips: 1000})
	_, err := room.Sit("p1", 0)
	a.NoError(err)

	a.Nil(room.StartHand())
	a.Equal(RoomWaiting, room.Status)
}

func TestRoom_StartHand_disconnectedPlayerSitsOut(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000, 1000)
	room.Players["p2"].IsConnected = false

	require.NotNil(t, room.StartHand())

	a.Equal(StatusSittingOut, room.Players["p2"].Status)
	a.Equal(1000, room.Players["p2"].Chips)

	// two dealt in: heads-up rules apply between p1 and p3
	hand := room.Hand
	a.Equal(0, hand.DealerSeat)
	a.Equal(0, hand.SmallBlindSeat)
	a.Equal(2, hand.BigBlindSeat)
}

func TestRoom_StartHand_shortBigBlind(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 5)
	require.NotNil(t, room.StartHand())

	hand := room.Hand
	bb := room.Players["p2"]
	a.Equal(0, bb.Chips)
	a.Equal(StatusAllIn, bb.Status)
	a.Equal(5, bb.CurrentBet)
	a.Equal(15, hand.Pot)

	// the bet to match is the blind actually posted
	a.Equal(5, hand.CurrentBet)

	// only the small blind can still act
	a.Equal("p1", hand.CurrentPlayerID)
	a.Equal([]string{"p1"}, hand.ActionOrder)
}

func TestRoom_StartHand_bothBlindsAllIn(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 10, 20)
	ev := room.StartHand()
	require.NotNil(t, ev)

	// nobody can act: the hand fast-forwards to the showdown
	hand := room.Hand
	a.Equal(PhaseShowdown, hand.Phase)
	a.Empty(hand.CurrentPlayerID)
	a.NotEmpty(hand.Pots)
	a.Contains(ev.Details, "phaseChange")
}

func TestRoom_resetHand_keepsDealerAndStacks(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000, 1000)
	require.NotNil(t, room.StartHand())
	a.Equal(0, room.Hand.DealerSeat)

	room.resetHand()

	a.Equal(RoomWaiting, room.Status)
	a.Equal(PhaseHandStart, room.Hand.Phase)
	a.Equal(0, room.Hand.DealerSeat)

	for _, p := range room.SeatedPlayers() {
		a.Equal(StatusActive, p.Status)
		a.Zero(p.CurrentBet)
		a.Zero(p.TotalBetThisHand)
		a.False(p.HasActed)
		a.False(p.Ready)
	}

	// dealer rotates on the next hand
	require.NotNil(t, room.StartHand())
	a.Equal(1, room.Hand.DealerSeat)
	a.Equal(2, room.HandNumber)
}
