package mux

import (
	"net/http"

	"holdem-ledger-server/pkg/room"
	"holdem-ledger-server/pkg/store"

	gmux "github.com/gorilla/mux"
)

// roomCodePattern matches a six character room code
const roomCodePattern = "{id:[A-Z0-9]{6}}"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	store   store.Store
	floor   *room.Floor
}

// NewMux returns a new HTTP mux backed by the given store
func NewMux(version string, st store.Store) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		store:   st,
		floor:   room.NewFloor(st),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/random-profile").Handler(this.getRandomProfile())

	r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())
	r.Methods(http.MethodGet).Path("/room").Handler(this.getRoom())
	r.Methods(http.MethodGet).Path("/room/" + roomCodePattern).Handler(this.getRoomID())
	r.Methods(http.MethodPost).Path("/room/" + roomCodePattern + "/join").Handler(this.postRoomIDJoin())
	r.Methods(http.MethodPost).Path("/room/" + roomCodePattern + "/leave/{playerId:[a-f0-9]{12}}").Handler(this.postRoomIDLeave())
	r.Methods(http.MethodGet).Path("/room/" + roomCodePattern + "/ws").Handler(this.getRoomIDWS())

	r.Methods(http.MethodGet).Path("/player-room/{playerId:[a-f0-9]{12}}").Handler(this.getPlayerRoom())

	return this
}

// Floor returns the session floor so the caller can run the room janitor
func (m *Mux) Floor() *room.Floor {
	return m.floor
}
