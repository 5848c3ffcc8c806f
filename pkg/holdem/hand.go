package holdem

// Phase is the stage of a hand
type Phase string

// Phase values
const (
	PhaseHandStart Phase = "hand_start"
	PhasePreflop   Phase = "preflop"
	PhaseFlop      Phase = "flop"
	PhaseTurn      Phase = "turn"
	PhaseRiver     Phase = "river"
	PhaseShowdown  Phase = "showdown"
	PhaseHandEnd   Phase = "hand_end"
)

// bettingPhases is the legal phase progression for betting streets
var bettingPhases = []Phase{PhasePreflop, PhaseFlop, PhaseTurn, PhaseRiver, PhaseShowdown}

// Hand is the state of a single hand. A fresh Hand replaces the previous
// one at reset; only the dealer seat carries over for rotation.
type Hand struct {
	Phase           Phase     `json:"phase"`
	DealerSeat      int       `json:"dealerSeat"`
	SmallBlindSeat  int       `json:"sbSeat"`
	BigBlindSeat    int       `json:"bbSeat"`
	CurrentBet      int       `json:"currentBet"`
	Pot             int       `json:"pot"`
	Pots            []*Pot    `json:"pots,omitempty"`
	ActionOrder     []string  `json:"actionOrder,omitempty"`
	ActionIndex     int       `json:"actionIndex"`
	CurrentPlayerID string    `json:"currentPlayerId,omitempty"`
	LastRaiserID    string    `json:"lastRaiserId,omitempty"`
	StreetComplete  bool      `json:"streetComplete"`
	Proposal        *Proposal `json:"proposal,omitempty"`
}

func newHand(dealerSeat int) *Hand {
	return &Hand{
		Phase:          PhaseHandStart,
		DealerSeat:     dealerSeat,
		SmallBlindSeat: -1,
		BigBlindSeat:   -1,
	}
}

// nextPhase returns the phase following the hand's current phase
func (h *Hand) nextPhase() Phase {
	for i, phase := range bettingPhases {
		if phase == h.Phase && i+1 < len(bettingPhases) {
			return bettingPhases[i+1]
		}
	}

	return PhaseShowdown
}

// setCurrentPlayer points the turn at the given player and keeps the
// action index in sync with the action order
func (h *Hand) setCurrentPlayer(id string) {
	h.CurrentPlayerID = id
	for i, pid := range h.ActionOrder {
		if pid == id {
			h.ActionIndex = i
			return
		}
	}
}

// StartHand deals everyone in and posts the blinds. It is a no-op (nil
// event) unless at least two connected players are seated. Disconnected
// players keep their seats but sit the hand out.
func (r *Room) StartHand() *Event {
	seated := r.connectedSeatedPlayers()
	if len(seated) < 2 {
		return nil
	}

	r.Status = RoomPlaying
	r.HandNumber++

	for _, p := range r.SeatedPlayers() {
		p.resetForHand()
		if !p.IsConnected {
			p.Status = StatusSittingOut
		}
	}

	dealerSeat := r.nextDealerSeat(seated)
	seats := seatIndices(seated)

	var sbSeat, bbSeat int
	if len(seated) == 2 {
		// heads-up: the dealer posts the small blind
		sbSeat = dealerSeat
		bbSeat = nextSeatAfter(seats, sbSeat)
	} else {
		sbSeat = nextSeatAfter(seats, dealerSeat)
		bbSeat = nextSeatAfter(seats, sbSeat)
	}

	hand := newHand(dealerSeat)
	hand.Phase = PhasePreflop
	hand.SmallBlindSeat = sbSeat
	hand.BigBlindSeat = bbSeat
	r.Hand = hand

	// blinds are capped at the stack; a short stack posts what it can and
	// is all-in immediately
	sb := r.playerAtSeat(sbSeat)
	bb := r.playerAtSeat(bbSeat)
	hand.Pot += sb.wager(r.SmallBlind)
	hand.Pot += bb.wager(r.BigBlind)
	hand.CurrentBet = bb.CurrentBet

	hand.ActionOrder = r.buildActionOrder(bbSeat)

	ev := newEvent("hand_started").
		with("handNumber", r.HandNumber).
		with("dealerSeat", dealerSeat).
		with("sbSeat", sbSeat).
		with("bbSeat", bbSeat)

	if len(hand.ActionOrder) > 0 {
		hand.setCurrentPlayer(hand.ActionOrder[0])
	} else if phase := r.checkStreetEnd(); phase != nil {
		// everyone covered by the blinds is already all-in
		ev.with("phaseChange", phase.Details)
	}

	return ev
}

// resetHand replaces the hand with a fresh one, keeping only the dealer
// seat for rotation. Chip stacks, rebuy counts, and cashout totals are
// preserved.
func (r *Room) resetHand() {
	dealerSeat := -1
	if r.Hand != nil {
		dealerSeat = r.Hand.DealerSeat
	}

	r.Hand = newHand(dealerSeat)
	r.Status = RoomWaiting

	for _, p := range r.SeatedPlayers() {
		p.resetForHand()
		p.Ready = false
	}
}
