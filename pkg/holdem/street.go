package holdem

// checkStreetEnd decides what happens after an accepted action: the hand
// ends (single survivor), the turn advances, the street pauses for the
// physical deal, or play fast-forwards to showdown. Returns a phase event
// when the phase changed, nil otherwise.
func (r *Room) checkStreetEnd() *Event {
	hand := r.Hand
	if hand == nil {
		return nil
	}

	// betting stops as soon as one player remains, matched or not
	if len(r.ActivePlayers()) <= 1 {
		return r.endHandSingleWinner()
	}

	actionable := r.ActionablePlayers()

	allActed := true
	for _, p := range actionable {
		if !p.HasActed || p.CurrentBet < hand.CurrentBet {
			allActed = false
			break
		}
	}

	if !allActed {
		r.advanceToNextPlayer()
		return nil
	}

	// nobody left who can bet: no further betting is possible
	if len(actionable) <= 1 {
		return r.advanceToShowdown()
	}

	if hand.Phase == PhaseRiver {
		return r.advanceToShowdown()
	}

	// pause so the next community cards can be dealt
	hand.StreetComplete = true
	hand.CurrentPlayerID = ""
	return newEvent("phase").
		with("phase", string(hand.Phase)).
		with("streetComplete", true)
}

// advanceToNextPlayer moves the turn to the next actionable player in seat
// order after the current actor who still needs to act
func (r *Room) advanceToNextPlayer() {
	hand := r.Hand
	actionable := r.ActionablePlayers()
	if len(actionable) == 0 {
		return
	}

	current := r.Players[hand.CurrentPlayerID]
	if current == nil {
		hand.setCurrentPlayer(actionable[0].ID)
		return
	}

	seated := r.SeatedPlayers()
	seats := seatIndices(seated)

	needsAction := make(map[string]bool, len(actionable))
	for _, p := range actionable {
		needsAction[p.ID] = !p.HasActed || p.CurrentBet < hand.CurrentBet
	}

	seat := current.Seat
	for i := 0; i < len(seats); i++ {
		seat = nextSeatAfter(seats, seat)
		p := r.playerAtSeat(seat)
		if p == nil || p.ID == hand.CurrentPlayerID {
			continue
		}

		if needs, ok := needsAction[p.ID]; ok && needs {
			hand.setCurrentPlayer(p.ID)
			return
		}
	}

	hand.setCurrentPlayer(actionable[0].ID)
}

// AdvanceStreet performs the manual advance to the next street once the
// current street's betting is complete and the physical cards are out.
func (r *Room) AdvanceStreet(playerID string) (*Event, error) {
	hand := r.Hand
	if r.Status != RoomPlaying || hand == nil {
		return nil, ErrNoActiveHand
	}

	if _, ok := r.Players[playerID]; !ok {
		return nil, ErrPlayerNotFound
	}

	if !hand.StreetComplete {
		return nil, ErrStreetNotComplete
	}

	next := hand.nextPhase()
	if next == PhaseShowdown {
		return r.advanceToShowdown(), nil
	}

	hand.Phase = next
	hand.CurrentBet = 0
	hand.LastRaiserID = ""
	hand.StreetComplete = false

	for _, p := range r.SeatedPlayers() {
		p.CurrentBet = 0
		if p.Status == StatusActive {
			p.HasActed = false
		}
	}

	hand.ActionOrder = r.buildActionOrder(hand.DealerSeat)
	hand.ActionIndex = 0
	if len(hand.ActionOrder) == 0 {
		return r.advanceToShowdown(), nil
	}

	hand.setCurrentPlayer(hand.ActionOrder[0])

	return newEvent("phase").with("phase", string(next)), nil
}

// advanceToShowdown computes the pots and hands control to the settlement
// protocol. No more turns are taken.
func (r *Room) advanceToShowdown() *Event {
	hand := r.Hand
	hand.Phase = PhaseShowdown
	hand.CurrentPlayerID = ""
	hand.StreetComplete = false
	hand.Pots = r.calculatePots()

	return newEvent("phase").
		with("phase", string(PhaseShowdown)).
		with("pots", hand.Pots)
}

// endHandSingleWinner awards the entire pot to the last player standing,
// bypassing the settlement protocol, and resets the hand.
func (r *Room) endHandSingleWinner() *Event {
	hand := r.Hand
	active := r.ActivePlayers()

	if len(active) == 1 {
		winner := active[0]
		winner.Chips += hand.Pot

		ev := newEvent("phase").
			with("phase", string(PhaseHandEnd)).
			with("winner", winner.ID).
			with("winnerName", winner.Name).
			with("pot", hand.Pot).
			with("singleWinner", true)

		r.resetHand()
		return ev
	}

	// should not happen: no active players left. Fall back to showdown so
	// the pot can still be settled deterministically.
	return r.advanceToShowdown()
}
