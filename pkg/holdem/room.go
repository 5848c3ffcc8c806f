package holdem

// NumSeats is the fixed number of seats at a table
const NumSeats = 12

// RoomStatus is the lifecycle state of a room
type RoomStatus string

// RoomStatus values
const (
	RoomWaiting  RoomStatus = "waiting"
	RoomPlaying  RoomStatus = "playing"
	RoomFinished RoomStatus = "finished"
)

// Options configures a new room
type Options struct {
	SmallBlind   int
	BigBlind     int
	InitialChips int
	RebuyMinimum int
	MaxChips     int
}

// Room is the authoritative chip ledger for one table. It is a fully
// serializable snapshot; all engine operations mutate the snapshot in place
// and return an event describing what happened. Concurrency control is the
// caller's responsibility: no two operations on the same room may run
// concurrently.
type Room struct {
	ID           string             `json:"id"`
	OwnerID      string             `json:"ownerId"`
	Status       RoomStatus         `json:"status"`
	SmallBlind   int                `json:"sbAmount"`
	BigBlind     int                `json:"bbAmount"`
	InitialChips int                `json:"initialChips"`
	RebuyMinimum int                `json:"rebuyMinimum"`
	MaxChips     int                `json:"maxChips"`
	Players      map[string]*Player `json:"players"`

	// Seats maps seat index to player ID. The empty string marks a vacant
	// seat. Clockwise order is ascending seat index with wrap-around.
	Seats [NumSeats]string `json:"seats"`

	Hand       *Hand `json:"hand,omitempty"`
	HandNumber int   `json:"handNumber"`

	// LastAllEmptyAt is the Unix time when the last connected player left,
	// or 0 while anyone is online. Used by the room janitor.
	LastAllEmptyAt int64 `json:"lastAllEmptyAt,omitempty"`
}

// NewRoom creates a room owned by the given player. The big blind defaults
// to twice the small blind.
func NewRoom(id string, owner *Player, opts Options) *Room {
	bigBlind := opts.BigBlind
	if bigBlind == 0 {
		bigBlind = opts.SmallBlind * 2
	}

	return &Room{
		ID:           id,
		OwnerID:      owner.ID,
		Status:       RoomWaiting,
		SmallBlind:   opts.SmallBlind,
		BigBlind:     bigBlind,
		InitialChips: opts.InitialChips,
		RebuyMinimum: opts.RebuyMinimum,
		MaxChips:     opts.MaxChips,
		Players:      map[string]*Player{owner.ID: owner},
	}
}

// Player returns the player with the given ID, or nil
func (r *Room) Player(id string) *Player {
	return r.Players[id]
}

// AddPlayer adds a player to the room roster
func (r *Room) AddPlayer(p *Player) {
	r.Players[p.ID] = p
}

// RemovePlayer removes a player from the roster, vacating their seat. If the
// owner leaves, ownership moves to another remaining member.
func (r *Room) RemovePlayer(id string) error {
	if r.Status == RoomPlaying {
		return ErrGameInProgress
	}

	p, ok := r.Players[id]
	if !ok {
		return nil
	}

	if p.IsSeated() {
		r.Seats[p.Seat] = ""
	}
	delete(r.Players, id)

	if id == r.OwnerID {
		for pid := range r.Players {
			r.OwnerID = pid
			break
		}
	}

	return nil
}

// Sit seats the player at the given seat index. Sitting while already
// seated vacates the old seat first.
func (r *Room) Sit(playerID string, seat int) (*Event, error) {
	if seat < 0 || seat >= NumSeats {
		return nil, ErrInvalidSeat
	}

	if r.Seats[seat] != "" {
		return nil, ErrSeatTaken
	}

	if r.Status == RoomPlaying {
		return nil, ErrGameInProgress
	}

	p, ok := r.Players[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if p.IsSeated() {
		r.Seats[p.Seat] = ""
	}

	p.Seat = seat
	r.Seats[seat] = playerID
	p.Status = StatusActive
	p.Ready = false

	return newEvent("sit").
		with("playerId", playerID).
		with("seat", seat), nil
}

// Stand vacates the player's seat and marks them sitting out
func (r *Room) Stand(playerID string) (*Event, error) {
	if r.Status == RoomPlaying {
		return nil, ErrGameInProgress
	}

	p, ok := r.Players[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if p.IsSeated() {
		r.Seats[p.Seat] = ""
	}

	p.Seat = -1
	p.Status = StatusSittingOut
	p.Ready = false

	return newEvent("stand").with("playerId", playerID), nil
}

// ToggleReady flips the player's ready flag. Once every connected, seated
// player is ready and at least two are seated, the hand starts.
func (r *Room) ToggleReady(playerID string) (*Event, error) {
	if r.Status == RoomPlaying {
		return nil, ErrGameInProgress
	}

	p, ok := r.Players[playerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if !p.IsSeated() {
		return nil, ErrMustSitFirst
	}

	p.Ready = !p.Ready

	if ev := r.StartHandIfReady(); ev != nil {
		return ev, nil
	}

	return newEvent("ready_toggle").
		with("playerId", playerID).
		with("ready", p.Ready), nil
}

// StartHandIfReady starts a hand if every connected, seated player is ready
// and at least two are seated. Returns nil if the hand did not start.
func (r *Room) StartHandIfReady() *Event {
	seated := r.connectedSeatedPlayers()
	if len(seated) < 2 {
		return nil
	}

	for _, p := range seated {
		if !p.Ready {
			return nil
		}
	}

	return r.StartHand()
}
