package holdem

import "sort"

// CanRebuy reports whether the player may rebuy: only between hands, and
// only when their stack is at or below the configured rebuy floor.
func (r *Room) CanRebuy(playerID string) bool {
	p, ok := r.Players[playerID]
	if !ok {
		return false
	}

	if r.Status == RoomPlaying {
		return false
	}

	return p.Chips <= r.RebuyMinimum
}

// Rebuy restores the player's stack to the starting amount
func (r *Room) Rebuy(playerID string) (*Event, error) {
	if !r.CanRebuy(playerID) {
		return nil, ErrCannotRebuy
	}

	p := r.Players[playerID]
	p.Chips = r.InitialChips
	p.Rebuys++

	return newEvent("rebuy").
		with("playerId", playerID).
		with("playerName", p.Name).
		with("chips", p.Chips).
		with("rebuys", p.Rebuys), nil
}

// CanCashout reports whether the player may cash out: a ceiling must be
// configured, the table must be between hands, and the stack must exceed
// the ceiling.
func (r *Room) CanCashout(playerID string) bool {
	p, ok := r.Players[playerID]
	if !ok {
		return false
	}

	if r.MaxChips <= 0 || r.Status == RoomPlaying {
		return false
	}

	return p.Chips > r.MaxChips
}

// Cashout moves one starting stack's worth of chips out of the player's
// stack into their cumulative cashed-out total. The player stays seated.
func (r *Room) Cashout(playerID string) (*Event, error) {
	if !r.CanCashout(playerID) {
		return nil, ErrCannotCashout
	}

	p := r.Players[playerID]
	p.Chips -= r.InitialChips
	p.CashedOut += r.InitialChips

	return newEvent("cashout").
		with("playerId", playerID).
		with("playerName", p.Name).
		with("chips", p.Chips).
		with("cashedOut", p.CashedOut), nil
}

// Standing is one row of the final session standings
type Standing struct {
	PlayerID  string `json:"playerId"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	Chips     int    `json:"chips"`
	CashedOut int    `json:"cashedOut"`
	Rebuys    int    `json:"rebuys"`
	Net       int    `json:"net"`
}

// Standings returns every player's net result, best first. Net is what a
// player holds plus what they walked away with, less every buy-in.
func (r *Room) Standings() []*Standing {
	standings := make([]*Standing, 0, len(r.Players))
	for _, p := range r.Players {
		buyIn := r.InitialChips * (1 + p.Rebuys)
		standings = append(standings, &Standing{
			PlayerID:  p.ID,
			Name:      p.Name,
			Emoji:     p.Emoji,
			Chips:     p.Chips,
			CashedOut: p.CashedOut,
			Rebuys:    p.Rebuys,
			Net:       p.Chips + p.CashedOut - buyIn,
		})
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Net != standings[j].Net {
			return standings[i].Net > standings[j].Net
		}
		return standings[i].PlayerID < standings[j].PlayerID
	})

	return standings
}

// EndSession finishes the session and reports the final standings. Only
// the owner may end it, and never during a live hand.
func (r *Room) EndSession(playerID string) (*Event, error) {
	if playerID != r.OwnerID {
		return nil, ErrNotOwner
	}

	if r.Status == RoomPlaying && r.Hand != nil &&
		r.Hand.Phase != PhaseHandStart && r.Hand.Phase != PhaseHandEnd {
		return nil, ErrHandInProgress
	}

	r.Status = RoomFinished

	return newEvent("game_ended").
		with("standings", r.Standings()), nil
}
