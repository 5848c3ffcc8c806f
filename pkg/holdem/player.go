package holdem

// Status is the lifecycle state of a player within a hand
type Status string

// Status values
const (
	StatusActive     Status = "active"
	StatusFolded     Status = "folded"
	StatusAllIn      Status = "all_in"
	StatusSittingOut Status = "sitting_out"
)

// Player is a participant in a room. The entire struct is part of the
// serialized room snapshot.
type Player struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Emoji            string `json:"emoji"`
	Chips            int    `json:"chips"`
	Seat             int    `json:"seat"`
	Ready            bool   `json:"ready"`
	Status           Status `json:"status"`
	CurrentBet       int    `json:"currentBet"`
	TotalBetThisHand int    `json:"totalBetThisHand"`
	HasActed         bool   `json:"hasActed"`
	IsConnected      bool   `json:"isConnected"`
	Rebuys           int    `json:"rebuys"`
	CashedOut        int    `json:"cashedOut"`
}

// NewPlayer returns an unseated player with the given starting stack
func NewPlayer(id, name, emoji string, chips int) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Emoji:  emoji,
		Chips:  chips,
		Seat:   -1,
		Status: StatusSittingOut,
	}
}

// wager moves up to amount chips from the player's stack into their street
// bet and returns how much was actually paid. Emptying the stack puts the
// player all-in.
func (p *Player) wager(amount int) int {
	paid := amount
	if paid > p.Chips {
		paid = p.Chips
	}
	if paid < 0 {
		paid = 0
	}

	p.Chips -= paid
	p.CurrentBet += paid
	p.TotalBetThisHand += paid
	if p.Chips == 0 {
		p.Status = StatusAllIn
	}

	return paid
}

// resetForHand clears the per-hand transient fields. Chip stacks, rebuy
// counts, and cashout totals are untouched.
func (p *Player) resetForHand() {
	p.Status = StatusActive
	p.CurrentBet = 0
	p.TotalBetThisHand = 0
	p.HasActed = false
}

// IsSeated returns true if the player occupies a seat
func (p *Player) IsSeated() bool {
	return p.Seat >= 0
}
