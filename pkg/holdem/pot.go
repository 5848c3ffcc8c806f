package holdem

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Pot is a main or side pot and the players who can win it
type Pot struct {
	ID                string   `json:"id"`
	Amount            int      `json:"amount"`
	EligiblePlayerIDs []string `json:"eligiblePlayers"`
}

func newPotID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// calculatePots splits the accumulated pot into a main pot and side pots.
// Side pots are carved at each distinct all-in contribution level,
// ascending; an all-in player can only win up to the level they matched.
// The pot amounts always sum exactly to the hand total.
func (r *Room) calculatePots() []*Pot {
	hand := r.Hand
	active := r.ActivePlayers()

	type contribution struct {
		playerID string
		amount   int
		live     bool
	}

	contributions := make([]contribution, 0)
	allInLevels := make([]int, 0)
	seenLevel := make(map[int]bool)

	for _, p := range r.SeatedPlayers() {
		if p.TotalBetThisHand <= 0 {
			continue
		}

		contributions = append(contributions, contribution{
			playerID: p.ID,
			amount:   p.TotalBetThisHand,
			live:     p.Status != StatusFolded,
		})

		if p.Status == StatusAllIn && !seenLevel[p.TotalBetThisHand] {
			seenLevel[p.TotalBetThisHand] = true
			allInLevels = append(allInLevels, p.TotalBetThisHand)
		}
	}

	activeIDs := make([]string, len(active))
	for i, p := range active {
		activeIDs[i] = p.ID
	}

	fallback := []*Pot{{
		ID:                newPotID(),
		Amount:            hand.Pot,
		EligiblePlayerIDs: activeIDs,
	}}

	if len(contributions) == 0 {
		return fallback
	}

	// nobody all-in: one pot for everyone still in the hand
	if len(allInLevels) == 0 {
		return fallback
	}

	sort.Ints(allInLevels)

	pots := make([]*Pot, 0, len(allInLevels)+1)
	prev := 0
	for _, level := range allInLevels {
		amount := 0
		eligible := make([]string, 0)
		for _, c := range contributions {
			capped := c.amount
			if capped > level {
				capped = level
			}
			if capped > prev {
				amount += capped - prev
			}
			if c.live && c.amount >= level {
				eligible = append(eligible, c.playerID)
			}
		}

		if amount > 0 && len(eligible) > 0 {
			pots = append(pots, &Pot{
				ID:                newPotID(),
				Amount:            amount,
				EligiblePlayerIDs: eligible,
			})
		}
		prev = level
	}

	// anything wagered beyond the largest all-in forms one final pot
	top := allInLevels[len(allInLevels)-1]
	amount := 0
	eligible := make([]string, 0)
	for _, c := range contributions {
		if c.amount > top {
			amount += c.amount - top
			if c.live {
				eligible = append(eligible, c.playerID)
			}
		}
	}

	if amount > 0 {
		if len(eligible) > 0 {
			pots = append(pots, &Pot{
				ID:                newPotID(),
				Amount:            amount,
				EligiblePlayerIDs: eligible,
			})
		} else if len(pots) > 0 {
			// every over-contribution came from folded players; merge it
			// into the last pot rather than dropping chips
			pots[len(pots)-1].Amount += amount
		}
	}

	if len(pots) == 0 {
		return fallback
	}

	return pots
}
