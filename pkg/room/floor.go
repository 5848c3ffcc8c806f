package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"holdem-ledger-server/pkg/holdem"
	"holdem-ledger-server/pkg/store"

	"github.com/sirupsen/logrus"
)

var errUnknownMessage = errors.New("unknown message type")
var errSeatRequired = errors.New("seat is required")

// Floor tracks which clients are connected to which room and serializes all
// mutations per room. Every state change follows load, mutate, save,
// broadcast against the store, so the store is always the source of truth.
type Floor struct {
	store store.Store

	mu       sync.Mutex
	sessions map[string]*session
}

// session is the live state for one room: the per-room lock plus the set of
// connected clients
type session struct {
	mu      sync.Mutex
	clients map[*Client]bool
}

// NewFloor returns a new floor backed by the given store
func NewFloor(st store.Store) *Floor {
	return &Floor{
		store:    st,
		sessions: make(map[string]*session),
	}
}

func (f *Floor) session(roomID string) *session {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[roomID]
	if !ok {
		s = &session{clients: make(map[*Client]bool)}
		f.sessions[roomID] = s
	}

	return s
}

func (f *Floor) clients(roomID string) []*Client {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[roomID]
	if !ok {
		return nil
	}

	clients := make([]*Client, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}

	return clients
}

// Broadcast sends a message to every client connected to the room
func (f *Floor) Broadcast(roomID string, msg interface{}) {
	for _, client := range f.clients(roomID) {
		if !client.Send(msg) {
			logrus.WithField("client", client.String()).Warn("send buffer full, dropping message")
		}
	}
}

// ClientConnected attaches the client to its room, marks the player online,
// and broadcasts the refreshed room state
func (f *Floor) ClientConnected(client *Client) {
	s := f.session(client.RoomID)

	s.mu.Lock()
	client.floor = f
	s.clients[client] = true
	s.mu.Unlock()

	logrus.WithField("client", client.String()).Debug("client connected")

	f.withRoom(client, func(room *holdem.Room) ([]*holdem.Event, error) {
		if p := room.Player(client.PlayerID); p != nil {
			p.IsConnected = true
		}
		room.LastAllEmptyAt = 0
		return nil, nil
	})

	f.Broadcast(client.RoomID, newPlayerPresence("player_connected", client.PlayerID))
}

// ClientDisconnected detaches the client, marks the player offline, and
// stamps the room when the last online player leaves
func (f *Floor) ClientDisconnected(client *Client) {
	s := f.session(client.RoomID)

	s.mu.Lock()
	delete(s.clients, client)
	empty := len(s.clients) == 0
	s.mu.Unlock()

	logrus.WithField("client", client.String()).Debug("client disconnected")

	ctx := context.Background()
	s.mu.Lock()
	room, err := f.store.Get(ctx, client.RoomID)
	if err == nil {
		if p := room.Player(client.PlayerID); p != nil {
			p.IsConnected = false
		}

		anyOnline := false
		for _, p := range room.Players {
			if p.IsConnected {
				anyOnline = true
				break
			}
		}
		if !anyOnline {
			room.LastAllEmptyAt = time.Now().Unix()
		}

		if err := f.store.Save(ctx, room); err != nil {
			logrus.WithError(err).WithField("room", client.RoomID).Error("could not save room")
		}
	} else if err != store.ErrRoomNotFound {
		logrus.WithError(err).WithField("room", client.RoomID).Error("could not load room")
	}
	s.mu.Unlock()

	if err == nil {
		f.Broadcast(client.RoomID, newRoomState(room))
		f.Broadcast(client.RoomID, newPlayerPresence("player_disconnected", client.PlayerID))
	}

	if empty {
		f.mu.Lock()
		if s, ok := f.sessions[client.RoomID]; ok && len(s.clients) == 0 {
			delete(f.sessions, client.RoomID)
		}
		f.mu.Unlock()
	}
}

// WithRoom loads the room, runs fn under the room's lock, saves the
// snapshot, and broadcasts the new state. An error from fn aborts the save.
func (f *Floor) WithRoom(ctx context.Context, roomID string, fn func(*holdem.Room) error) error {
	s := f.session(roomID)

	s.mu.Lock()
	room, err := f.store.Get(ctx, roomID)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	if err := fn(room); err != nil {
		s.mu.Unlock()
		return err
	}

	if err := f.store.Save(ctx, room); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	f.Broadcast(roomID, newRoomState(room))
	return nil
}

// RemoveRoom deletes the room and tells any connected clients it is gone
func (f *Floor) RemoveRoom(ctx context.Context, roomID string) error {
	s := f.session(roomID)

	s.mu.Lock()
	err := f.store.Delete(ctx, roomID)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	for _, client := range f.clients(roomID) {
		select {
		case client.Close <- "room no longer exists":
		default:
		}
	}

	return nil
}

// withRoom runs fn against the room snapshot under the room's lock. On
// success the snapshot is saved and the new room state is broadcast along
// with any events fn produced; on error only the acting client hears about
// it.
func (f *Floor) withRoom(client *Client, fn func(*holdem.Room) ([]*holdem.Event, error)) {
	s := f.session(client.RoomID)
	ctx := context.Background()

	s.mu.Lock()
	room, err := f.store.Get(ctx, client.RoomID)
	if err != nil {
		s.mu.Unlock()

		if err == store.ErrRoomNotFound {
			select {
			case client.Close <- "room no longer exists":
			default:
			}
			return
		}

		logrus.WithError(err).WithField("room", client.RoomID).Error("could not load room")
		client.Send(newErrorResponse("", err))
		return
	}

	events, err := fn(room)
	if err != nil {
		s.mu.Unlock()
		client.Send(newErrorResponse("", err))
		return
	}

	if err := f.store.Save(ctx, room); err != nil {
		s.mu.Unlock()
		logrus.WithError(err).WithField("room", client.RoomID).Error("could not save room")
		client.Send(newErrorResponse("", err))
		return
	}
	s.mu.Unlock()

	f.Broadcast(client.RoomID, newRoomState(room))
	for _, ev := range events {
		f.Broadcast(client.RoomID, ev.Payload())
	}
}

// ReceivedMessage dispatches a client message to the engine
func (f *Floor) ReceivedMessage(c *Client, msg *PayloadIn) {
	if msg.Type == "ping" {
		c.Send(newPongResponse(msg.Context))
		return
	}

	f.withRoom(c, func(room *holdem.Room) ([]*holdem.Event, error) {
		switch msg.Type {
		case "sit":
			if msg.Seat == nil {
				return nil, errSeatRequired
			}

			ev, err := room.Sit(c.PlayerID, *msg.Seat)
			return one(ev), err
		case "stand":
			ev, err := room.Stand(c.PlayerID)
			return one(ev), err
		case "ready":
			ev, err := room.ToggleReady(c.PlayerID)
			return one(ev), err
		case "action":
			action, err := holdem.ParseAction(msg.Action)
			if err != nil {
				return nil, err
			}

			ev, err := room.ProcessAction(c.PlayerID, action, msg.Amount)
			return one(ev), err
		case "advance":
			ev, err := room.AdvanceStreet(c.PlayerID)
			return one(ev), err
		case "propose_settle":
			ev, err := room.ProposeSettlement(c.PlayerID, msg.PotWinners)
			return one(ev), err
		case "confirm_settle":
			ev, err := room.ConfirmSettlement(c.PlayerID)
			return one(ev), err
		case "reject_settle":
			ev, err := room.RejectSettlement(c.PlayerID)
			return one(ev), err
		case "rebuy":
			ev, err := room.Rebuy(c.PlayerID)
			if err != nil {
				return nil, err
			}

			return append(one(ev), f.readyAfterTopUp(room, c.PlayerID)...), nil
		case "cashout":
			ev, err := room.Cashout(c.PlayerID)
			if err != nil {
				return nil, err
			}

			return append(one(ev), f.readyAfterTopUp(room, c.PlayerID)...), nil
		case "end_game":
			ev, err := room.EndSession(c.PlayerID)
			return one(ev), err
		}

		return nil, errUnknownMessage
	})
}

// readyAfterTopUp marks a player ready after a rebuy or cashout so a table
// that was only waiting on their chips can deal the next hand
func (f *Floor) readyAfterTopUp(room *holdem.Room, playerID string) []*holdem.Event {
	p := room.Player(playerID)
	if p == nil || !p.IsSeated() || p.Ready || room.CanCashout(playerID) {
		return nil
	}

	ev, err := room.ToggleReady(playerID)
	if err != nil {
		return nil
	}

	return one(ev)
}

func one(ev *holdem.Event) []*holdem.Event {
	if ev == nil {
		return nil
	}

	return []*holdem.Event{ev}
}
