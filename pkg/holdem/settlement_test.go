package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// showdownRoom plays the uneven all-in scenario to the showdown: main pot
// 90 (everyone), side pot 40 (p1 and p3)
func showdownRoom(t *testing.T) *Room {
	t.Helper()

	room := newTestRoom(t, 50, 30, 1000)
	require.NotNil(t, room.StartHand())

	for _, move := range []struct {
		playerID string
		action   Action
	}{
		{"p1", ActionAllIn},
		{"p2", ActionAllIn},
		{"p3", ActionCall},
	} {
		_, err := room.ProcessAction(move.playerID, move.action, 0)
		require.NoError(t, err)
	}

	require.Equal(t, PhaseShowdown, room.Hand.Phase)
	return room
}

func TestRoom_ProposeSettlement_validation(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000)
	_, err := room.ProposeSettlement("p1", map[string][]string{"x": {"p1"}})
	a.ErrorIs(err, ErrNotInShowdown)

	room = showdownRoom(t)
	_, err = room.ProposeSettlement("p1", nil)
	a.ErrorIs(err, ErrNoWinners)

	_, err = room.ProposeSettlement("ghost", map[string][]string{"x": {"p1"}})
	a.ErrorIs(err, ErrPlayerNotFound)
}

func TestRoom_settlement_fullProtocol(t *testing.T) {
	a := assert.New(t)

	room := showdownRoom(t)
	pots := room.Hand.Pots

	ev, err := room.ProposeSettlement("p3", map[string][]string{
		pots[0].ID: {"p2"},
		pots[1].ID: {"p1"},
	})
	a.NoError(err)
	a.Equal("settlement_proposed", ev.Name)

	// the proposer is confirmed from the start
	a.Equal([]string{"p3"}, room.Hand.Proposal.ConfirmedBy)

	ev, err = room.ConfirmSettlement("p1")
	a.NoError(err)
	a.Equal("settlement_confirmed", ev.Name)
	a.Equal(true, ev.Details["waiting"])

	// confirming twice is a no-op
	_, err = room.ConfirmSettlement("p1")
	a.NoError(err)
	a.Equal([]string{"p3", "p1"}, room.Hand.Proposal.ConfirmedBy)

	// the final confirmation executes the settlement
	ev, err = room.ConfirmSettlement("p2")
	a.NoError(err)
	a.Equal("settled", ev.Name)

	a.Equal(90, room.Players["p2"].Chips)
	a.Equal(40, room.Players["p1"].Chips)
	a.Equal(950, room.Players["p3"].Chips)

	// 50 + 30 + 1000 before the hand
	a.Equal(1080, totalChips(room))

	a.Equal(RoomWaiting, room.Status)
	a.Equal(PhaseHandStart, room.Hand.Phase)
}

func TestRoom_RejectSettlement_discardsProposal(t *testing.T) {
	a := assert.New(t)

	room := showdownRoom(t)
	pots := room.Hand.Pots

	_, err := room.ProposeSettlement("p3", map[string][]string{pots[0].ID: {"p3"}})
	a.NoError(err)

	ev, err := room.RejectSettlement("p2")
	a.NoError(err)
	a.Equal("settlement_rejected", ev.Name)
	a.Nil(room.Hand.Proposal)

	// confirming now fails; a fresh proposal is required
	_, err = room.ConfirmSettlement("p1")
	a.ErrorIs(err, ErrNoProposal)

	_, err = room.ProposeSettlement("p1", map[string][]string{pots[0].ID: {"p1"}})
	a.NoError(err)
	a.NotNil(room.Hand.Proposal)
}

func TestRoom_executeSettlement_invalidWinnersFallBackToEligible(t *testing.T) {
	a := assert.New(t)

	room := showdownRoom(t)
	pots := room.Hand.Pots

	// p2 is not eligible for the side pot; the side pot splits between its
	// eligible players instead of going unpaid
	_, err := room.ProposeSettlement("p1", map[string][]string{
		pots[0].ID: {"p3"},
		pots[1].ID: {"p2"},
	})
	require.NoError(t, err)

	_, err = room.ConfirmSettlement("p2")
	require.NoError(t, err)
	ev, err := room.ConfirmSettlement("p3")
	require.NoError(t, err)
	a.Equal("settled", ev.Name)

	// side pot 40 split between p1 and p3
	a.Equal(20, room.Players["p1"].Chips)
	a.Equal(950+90+20, room.Players["p3"].Chips)
	a.Equal(1080, totalChips(room))
}

func TestRoom_executeSettlement_remainderChips(t *testing.T) {
	a := assert.New(t)

	room := newTestRoom(t, 1000, 1000, 1000)
	room.Hand = newHand(0)
	room.Hand.Phase = PhaseShowdown
	room.Hand.Pot = 101
	room.Hand.Pots = []*Pot{{
		ID:                "pot1",
		Amount:            101,
		EligiblePlayerIDs: []string{"p1", "p2", "p3"},
	}}

	// odd chip goes to the first listed winner
	_, err := room.ProposeSettlement("p1", map[string][]string{
		"pot1": {"p2", "p3"},
	})
	require.NoError(t, err)

	_, err = room.ConfirmSettlement("p2")
	require.NoError(t, err)
	_, err = room.ConfirmSettlement("p3")
	require.NoError(t, err)

	a.Equal(1051, room.Players["p2"].Chips)
	a.Equal(1050, room.Players["p3"].Chips)
	a.Equal(1000, room.Players["p1"].Chips)
}
