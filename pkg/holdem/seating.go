package holdem

// SeatedPlayers returns the seated players ordered by seat index
func (r *Room) SeatedPlayers() []*Player {
	players := make([]*Player, 0, len(r.Players))
	for seat := 0; seat < NumSeats; seat++ {
		if id := r.Seats[seat]; id != "" {
			if p, ok := r.Players[id]; ok {
				players = append(players, p)
			}
		}
	}

	return players
}

// connectedSeatedPlayers restricts SeatedPlayers to players currently
// online. Only used when starting a new hand: a disconnected player is
// skipped for the deal but keeps their seat.
func (r *Room) connectedSeatedPlayers() []*Player {
	players := make([]*Player, 0)
	for _, p := range r.SeatedPlayers() {
		if p.IsConnected {
			players = append(players, p)
		}
	}

	return players
}

// ActivePlayers returns the seated players still in the hand (not folded,
// not sitting out)
func (r *Room) ActivePlayers() []*Player {
	players := make([]*Player, 0)
	for _, p := range r.SeatedPlayers() {
		if p.Status != StatusFolded && p.Status != StatusSittingOut {
			players = append(players, p)
		}
	}

	return players
}

// ActionablePlayers returns the active players who can still make a
// decision (not all-in)
func (r *Room) ActionablePlayers() []*Player {
	players := make([]*Player, 0)
	for _, p := range r.ActivePlayers() {
		if p.Status != StatusAllIn {
			players = append(players, p)
		}
	}

	return players
}

// playerAtSeat returns the player occupying the given seat, or nil
func (r *Room) playerAtSeat(seat int) *Player {
	if seat < 0 || seat >= NumSeats {
		return nil
	}

	if id := r.Seats[seat]; id != "" {
		return r.Players[id]
	}

	return nil
}

// seatIndices returns the seat index of each player, preserving order
func seatIndices(players []*Player) []int {
	seats := make([]int, len(players))
	for i, p := range players {
		seats[i] = p.Seat
	}

	return seats
}

// nextSeatAfter returns the smallest seat index strictly greater than
// after, wrapping around to the lowest. The same clockwise rule drives
// dealer rotation, blind assignment, and action order.
func nextSeatAfter(seats []int, after int) int {
	if len(seats) == 0 {
		return -1
	}

	for _, s := range seats {
		if s > after {
			return s
		}
	}

	return seats[0]
}

// nextDealerSeat returns the seat of the next dealer among the given
// players, rotating clockwise from the previous hand's dealer
func (r *Room) nextDealerSeat(players []*Player) int {
	if len(players) == 0 {
		return -1
	}

	prevDealer := -1
	if r.Hand != nil {
		prevDealer = r.Hand.DealerSeat
	}

	seats := seatIndices(players)
	if prevDealer == -1 {
		return seats[0]
	}

	return nextSeatAfter(seats, prevDealer)
}

// buildActionOrder rotates the seated players to start immediately after
// afterSeat, keeping only players who are still active. All-in and folded
// players never appear in the order.
func (r *Room) buildActionOrder(afterSeat int) []string {
	seated := r.SeatedPlayers()
	if len(seated) == 0 {
		return nil
	}

	seats := seatIndices(seated)

	start := 0
	for i, s := range seats {
		if s > afterSeat {
			start = i
			break
		}
	}

	order := make([]string, 0, len(seated))
	for i := 0; i < len(seated); i++ {
		p := seated[(start+i)%len(seated)]
		if p.Status == StatusActive {
			order = append(order, p.ID)
		}
	}

	return order
}
