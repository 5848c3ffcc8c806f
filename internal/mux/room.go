package mux

import (
	"errors"
	"net/http"

	"holdem-ledger-server/internal/util"
	"holdem-ledger-server/pkg/holdem"
	"holdem-ledger-server/pkg/store"

	gmux "github.com/gorilla/mux"
)

// roomCodeAttempts bounds the search for an unused room code
const roomCodeAttempts = 20

var errRoomFinished = errors.New("the session has ended")

type postRoomPayload struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`

	// PlayerID lets a device reuse its identifier across rooms
	PlayerID string `json:"playerId"`

	SmallBlind   int `json:"smallBlind"`
	BigBlind     int `json:"bigBlind"`
	InitialChips int `json:"initialChips"`
	RebuyMinimum int `json:"rebuyMinimum"`
	MaxChips     int `json:"maxChips"`
}

type roomCreatedResponse struct {
	RoomID   string       `json:"roomId"`
	PlayerID string       `json:"playerId"`
	Room     *holdem.Room `json:"room"`
}

func (p *postRoomPayload) validate() error {
	if p.SmallBlind < 1 {
		return errors.New("smallBlind must be at least 1")
	}

	bigBlind := p.BigBlind
	if bigBlind == 0 {
		bigBlind = p.SmallBlind * 2
	}
	if bigBlind < p.SmallBlind {
		return errors.New("bigBlind cannot be less than smallBlind")
	}

	if p.InitialChips < bigBlind {
		return errors.New("initialChips must cover the big blind")
	}

	if p.MaxChips != 0 && p.MaxChips < p.InitialChips {
		return errors.New("maxChips cannot be less than initialChips")
	}

	return nil
}

// fillProfile defaults the name and emoji to a random profile
func (p *postRoomPayload) fillProfile() {
	if p.Name == "" {
		p.Name = util.GetRandomName()
	}

	if p.Emoji == "" {
		p.Emoji = util.GetRandomEmoji()
	}

	if p.PlayerID == "" {
		p.PlayerID = util.NewPlayerID()
	}
}

func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postRoomPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if err := pp.validate(); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}
		pp.fillProfile()

		roomID, err := m.newRoomCode(r)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		owner := holdem.NewPlayer(pp.PlayerID, pp.Name, pp.Emoji, pp.InitialChips)
		newRoom := holdem.NewRoom(roomID, owner, holdem.Options{
			SmallBlind:   pp.SmallBlind,
			BigBlind:     pp.BigBlind,
			InitialChips: pp.InitialChips,
			RebuyMinimum: pp.RebuyMinimum,
			MaxChips:     pp.MaxChips,
		})

		if err := m.store.Save(r.Context(), newRoom); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, roomCreatedResponse{
			RoomID:   roomID,
			PlayerID: pp.PlayerID,
			Room:     newRoom,
		})
	}
}

// newRoomCode finds a room code not already in use
func (m *Mux) newRoomCode(r *http.Request) (string, error) {
	for i := 0; i < roomCodeAttempts; i++ {
		code := util.NewRoomCode()
		if _, err := m.store.Get(r.Context(), code); err == store.ErrRoomNotFound {
			return code, nil
		} else if err != nil {
			return "", err
		}
	}

	return "", errors.New("could not allocate a room code")
}

type roomSummary struct {
	ID           string            `json:"id"`
	Status       holdem.RoomStatus `json:"status"`
	OwnerName    string            `json:"ownerName"`
	OwnerEmoji   string            `json:"ownerEmoji"`
	SmallBlind   int               `json:"sbAmount"`
	BigBlind     int               `json:"bbAmount"`
	InitialChips int               `json:"initialChips"`
	PlayerCount  int               `json:"playerCount"`
	OnlineCount  int               `json:"onlineCount"`
}

func newRoomSummary(rm *holdem.Room) *roomSummary {
	summary := &roomSummary{
		ID:           rm.ID,
		Status:       rm.Status,
		SmallBlind:   rm.SmallBlind,
		BigBlind:     rm.BigBlind,
		InitialChips: rm.InitialChips,
		PlayerCount:  len(rm.Players),
	}

	if owner := rm.Player(rm.OwnerID); owner != nil {
		summary.OwnerName = owner.Name
		summary.OwnerEmoji = owner.Emoji
	}

	for _, p := range rm.Players {
		if p.IsConnected {
			summary.OnlineCount++
		}
	}

	return summary
}

func (m *Mux) getRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms, err := m.store.List(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		summaries := make([]*roomSummary, 0, len(rooms))
		for _, rm := range rooms {
			if rm.Status == holdem.RoomFinished {
				continue
			}

			summaries = append(summaries, newRoomSummary(rm))
		}

		writeJSON(w, http.StatusOK, summaries)
	}
}

func (m *Mux) getRoomID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm, err := m.store.Get(r.Context(), gmux.Vars(r)["id"])
		if err != nil {
			if err == store.ErrRoomNotFound {
				writeJSONError(w, http.StatusNotFound, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, rm)
	}
}

type joinRoomPayload struct {
	Name     string `json:"name"`
	Emoji    string `json:"emoji"`
	PlayerID string `json:"playerId"`
}

func (m *Mux) postRoomIDJoin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var jp joinRoomPayload
		if !decodeRequest(w, r, &jp) {
			return
		}

		if jp.Name == "" {
			jp.Name = util.GetRandomName()
		}
		if jp.Emoji == "" {
			jp.Emoji = util.GetRandomEmoji()
		}
		if jp.PlayerID == "" {
			jp.PlayerID = util.NewPlayerID()
		}

		roomID := gmux.Vars(r)["id"]

		var joined *holdem.Room
		err := m.floor.WithRoom(r.Context(), roomID, func(rm *holdem.Room) error {
			if rm.Status == holdem.RoomFinished {
				return errRoomFinished
			}

			// rejoining with a known id is idempotent
			if rm.Player(jp.PlayerID) == nil {
				rm.AddPlayer(holdem.NewPlayer(jp.PlayerID, jp.Name, jp.Emoji, rm.InitialChips))
			}

			joined = rm
			return nil
		})

		if err != nil {
			switch err {
			case store.ErrRoomNotFound:
				writeJSONError(w, http.StatusNotFound, err)
			case errRoomFinished:
				writeJSONError(w, http.StatusConflict, err)
			default:
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, roomCreatedResponse{
			RoomID:   roomID,
			PlayerID: jp.PlayerID,
			Room:     joined,
		})
	}
}

func (m *Mux) postRoomIDLeave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := gmux.Vars(r)
		roomID, playerID := vars["id"], vars["playerId"]

		remaining := -1
		err := m.floor.WithRoom(r.Context(), roomID, func(rm *holdem.Room) error {
			if err := rm.RemovePlayer(playerID); err != nil {
				return err
			}

			remaining = len(rm.Players)
			return nil
		})

		if err != nil {
			switch err {
			case store.ErrRoomNotFound:
				writeJSONError(w, http.StatusNotFound, err)
			case holdem.ErrGameInProgress:
				writeJSONError(w, http.StatusConflict, err)
			default:
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		if remaining == 0 {
			if err := m.floor.RemoveRoom(r.Context(), roomID); err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	}
}

type playerRoomResponse struct {
	RoomID string       `json:"roomId"`
	Room   *holdem.Room `json:"room"`
}

func (m *Mux) getPlayerRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := gmux.Vars(r)["playerId"]

		rooms, err := m.store.List(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		for _, rm := range rooms {
			if rm.Status != holdem.RoomFinished && rm.Player(playerID) != nil {
				writeJSON(w, http.StatusOK, playerRoomResponse{RoomID: rm.ID, Room: rm})
				return
			}
		}

		writeJSONError(w, http.StatusNotFound, errors.New("player is not in a room"))
	}
}
