package room

import (
	"holdem-ledger-server/pkg/holdem"
)

func newErrorResponse(ctx string, err error) map[string]interface{} {
	return map[string]interface{}{
		"type":    "error",
		"message": err.Error(),
		"context": ctx,
	}
}

func newPongResponse(ctx string) map[string]interface{} {
	return map[string]interface{}{
		"type":    "pong",
		"context": ctx,
	}
}

// newRoomState wraps a room snapshot for broadcast. The snapshot is private
// to the operation that loaded it, so marshaling may happen after the room
// lock is released.
func newRoomState(room *holdem.Room) map[string]interface{} {
	return map[string]interface{}{
		"type": "room_state",
		"room": room,
	}
}

func newPlayerPresence(event, playerID string) map[string]interface{} {
	return map[string]interface{}{
		"type":     "event",
		"event":    event,
		"playerId": playerID,
	}
}
