package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a player connected to a room via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// RoomID is the room this client is attached to
	RoomID string

	// PlayerID identifies the player within the room
	PlayerID string

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	floor *Floor
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, roomID, playerID string) *Client {
	return &Client{
		Conn:     conn,
		RoomID:   roomID,
		PlayerID: playerID,
		send:     make(chan interface{}, 256),
		Close:    make(chan string, 1),
	}
}

// Send sends a message to the web client. It never blocks; a client whose
// send buffer is full misses the message.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outgoing messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player and room
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.PlayerID, c.RoomID)
}

// ReceivedMessage is called when the server receives a message from a
// connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.floor == nil {
		logrus.WithField("msg", msg).Warn("received message, but client is not on the floor")
		return
	}

	c.floor.ReceivedMessage(c, msg)
}
