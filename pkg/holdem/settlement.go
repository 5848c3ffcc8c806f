package holdem

// Proposal is a pending showdown settlement: the proposer's claim of which
// players won each pot, awaiting confirmation from every active player.
// The proposer is confirmed from the start.
type Proposal struct {
	ProposerID  string              `json:"proposerId"`
	PotWinners  map[string][]string `json:"potWinners"`
	ConfirmedBy []string            `json:"confirmedBy"`
}

func (p *Proposal) confirmed(playerID string) bool {
	for _, id := range p.ConfirmedBy {
		if id == playerID {
			return true
		}
	}

	return false
}

// Settlement is one payout line from an executed settlement
type Settlement struct {
	PotID      string `json:"potId"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Amount     int    `json:"amount"`
}

// ProposeSettlement creates a settlement proposal during the showdown.
// potWinners maps pot ID to an ordered list of winner IDs; the order
// decides who receives any odd chips.
func (r *Room) ProposeSettlement(proposerID string, potWinners map[string][]string) (*Event, error) {
	hand := r.Hand
	if hand == nil || hand.Phase != PhaseShowdown {
		return nil, ErrNotInShowdown
	}

	p, ok := r.Players[proposerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if len(potWinners) == 0 {
		return nil, ErrNoWinners
	}

	hand.Proposal = &Proposal{
		ProposerID:  proposerID,
		PotWinners:  potWinners,
		ConfirmedBy: []string{proposerID},
	}

	if ev := r.executeIfAllConfirmed(); ev != nil {
		return ev, nil
	}

	return newEvent("settlement_proposed").
		with("proposerId", proposerID).
		with("proposerName", p.Name).
		with("potWinners", potWinners), nil
}

// ConfirmSettlement records a player's agreement with the pending proposal.
// Confirming twice is a no-op. Once every active player has confirmed, the
// settlement executes.
func (r *Room) ConfirmSettlement(playerID string) (*Event, error) {
	hand := r.Hand
	if hand == nil || hand.Proposal == nil {
		return nil, ErrNoProposal
	}

	p, ok := r.Players[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if !hand.Proposal.confirmed(playerID) {
		hand.Proposal.ConfirmedBy = append(hand.Proposal.ConfirmedBy, playerID)
	}

	if ev := r.executeIfAllConfirmed(); ev != nil {
		return ev, nil
	}

	return newEvent("settlement_confirmed").
		with("playerId", playerID).
		with("playerName", p.Name).
		with("waiting", true), nil
}

// RejectSettlement vetoes the pending proposal. Any player may reject; the
// proposer must start over.
func (r *Room) RejectSettlement(playerID string) (*Event, error) {
	hand := r.Hand
	if hand == nil || hand.Proposal == nil {
		return nil, ErrNoProposal
	}

	p, ok := r.Players[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	hand.Proposal = nil

	return newEvent("settlement_rejected").
		with("playerId", playerID).
		with("rejectorName", p.Name), nil
}

func (r *Room) executeIfAllConfirmed() *Event {
	proposal := r.Hand.Proposal
	for _, p := range r.ActivePlayers() {
		if !proposal.confirmed(p.ID) {
			return nil
		}
	}

	return r.executeSettlement()
}

// executeSettlement pays out each pot to the proposed winners and resets
// the hand. Winners are filtered to each pot's eligible set; a pot left
// with no valid winner is split among all of its eligible players so chips
// are never dropped. Remainder chips go one each to the first winners in
// list order.
func (r *Room) executeSettlement() *Event {
	hand := r.Hand
	proposal := hand.Proposal
	settlements := make([]*Settlement, 0)

	for _, pot := range hand.Pots {
		eligible := make(map[string]bool, len(pot.EligiblePlayerIDs))
		for _, id := range pot.EligiblePlayerIDs {
			eligible[id] = true
		}

		winners := make([]string, 0)
		seen := make(map[string]bool)
		for _, id := range proposal.PotWinners[pot.ID] {
			if eligible[id] && !seen[id] {
				seen[id] = true
				winners = append(winners, id)
			}
		}

		if len(winners) == 0 {
			winners = pot.EligiblePlayerIDs
		}

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)

		for i, id := range winners {
			award := share
			if i < remainder {
				award++
			}

			winner := r.Players[id]
			winner.Chips += award
			settlements = append(settlements, &Settlement{
				PotID:      pot.ID,
				PlayerID:   id,
				PlayerName: winner.Name,
				Amount:     award,
			})
		}
	}

	ev := newEvent("settled").
		with("phase", string(PhaseHandEnd)).
		with("settlements", settlements).
		with("singleWinner", false)

	r.resetHand()
	return ev
}
