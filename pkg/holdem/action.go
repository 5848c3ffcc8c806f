package holdem

import "fmt"

// Action is a wagering action
type Action string

// Action values
const (
	ActionFold  Action = "fold"
	ActionCheck Action = "check"
	ActionCall  Action = "call"
	ActionRaise Action = "raise"
	ActionAllIn Action = "all_in"
)

// ParseAction converts a wire string into an Action
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionFold, ActionCheck, ActionCall, ActionRaise, ActionAllIn:
		return a, nil
	}

	return "", fmt.Errorf("%w: %s", ErrInvalidAction, s)
}

// ProcessAction validates and applies a single wagering action for the
// player whose turn it is. For a raise, amount is the new total the raiser
// is betting this street, not a delta. A rejected action leaves the room
// unchanged.
func (r *Room) ProcessAction(playerID string, action Action, amount int) (*Event, error) {
	hand := r.Hand
	if r.Status != RoomPlaying || hand == nil {
		return nil, ErrNoActiveHand
	}

	if hand.CurrentPlayerID != playerID {
		return nil, ErrNotYourTurn
	}

	p := r.Players[playerID]
	ev := newEvent("action").
		with("action", string(action)).
		with("playerId", playerID).
		with("playerName", p.Name)

	switch action {
	case ActionFold:
		p.Status = StatusFolded
		p.HasActed = true
		ev.with("detail", "folded")

	case ActionCheck:
		if hand.CurrentBet > p.CurrentBet {
			return nil, ErrCannotCheck
		}
		p.HasActed = true
		ev.with("detail", "checked")

	case ActionCall:
		paid := p.wager(hand.CurrentBet - p.CurrentBet)
		hand.Pot += paid
		p.HasActed = true
		ev.with("detail", fmt.Sprintf("called %d", paid)).
			with("amount", paid)

	case ActionRaise:
		if amount <= hand.CurrentBet {
			return nil, ErrRaiseTooSmall
		}

		paid := p.wager(amount - p.CurrentBet)
		hand.Pot += paid
		hand.CurrentBet = p.CurrentBet
		hand.LastRaiserID = playerID
		r.reopenAction(playerID)
		p.HasActed = true
		ev.with("detail", fmt.Sprintf("raised to %d", p.CurrentBet)).
			with("amount", p.CurrentBet)

	case ActionAllIn:
		paid := p.wager(p.Chips)
		hand.Pot += paid
		p.Status = StatusAllIn
		if p.CurrentBet > hand.CurrentBet {
			// a covering all-in plays as a raise
			hand.CurrentBet = p.CurrentBet
			hand.LastRaiserID = playerID
			r.reopenAction(playerID)
		}
		p.HasActed = true
		ev.with("detail", fmt.Sprintf("all-in %d", p.CurrentBet)).
			with("amount", p.CurrentBet)

	default:
		return nil, ErrInvalidAction
	}

	if phase := r.checkStreetEnd(); phase != nil {
		ev.with("phaseChange", phase.Details)
	}

	return ev, nil
}

// reopenAction clears the acted flag for every other player still able to
// respond to a raise
func (r *Room) reopenAction(raiserID string) {
	for _, id := range r.Hand.ActionOrder {
		if id == raiserID {
			continue
		}

		if p, ok := r.Players[id]; ok && p.Status == StatusActive {
			p.HasActed = false
		}
	}
}
