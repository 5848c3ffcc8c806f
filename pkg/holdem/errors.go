package holdem

import "errors"

// ErrNotYourTurn is returned when a player acts out of turn
var ErrNotYourTurn = errors.New("not your turn")

// ErrCannotCheck is returned when a player checks with an unmatched bet in front of them
var ErrCannotCheck = errors.New("cannot check, must call or raise")

// ErrRaiseTooSmall is returned when a raise does not exceed the current bet
var ErrRaiseTooSmall = errors.New("raise must exceed current bet")

// ErrInvalidAction is returned for an unrecognized wagering action
var ErrInvalidAction = errors.New("invalid action")

// ErrNoActiveHand is returned when a wagering action arrives outside of a hand
var ErrNoActiveHand = errors.New("no active hand")

// ErrStreetNotComplete is returned when an advance is requested mid-street
var ErrStreetNotComplete = errors.New("street not complete")

// ErrNotInShowdown is returned when settlement is attempted before the showdown
var ErrNotInShowdown = errors.New("not in showdown phase")

// ErrNoProposal is returned when there is no settlement proposal to act on
var ErrNoProposal = errors.New("no settlement proposal")

// ErrNoWinners is returned when a settlement proposal names no winners
var ErrNoWinners = errors.New("no winners specified")

// ErrCannotRebuy is returned when a player is not eligible to rebuy
var ErrCannotRebuy = errors.New("cannot rebuy")

// ErrCannotCashout is returned when a player is not eligible to cash out
var ErrCannotCashout = errors.New("cannot cash out")

// ErrInvalidSeat is returned for a seat index outside the table bounds
var ErrInvalidSeat = errors.New("invalid seat")

// ErrSeatTaken is returned when the requested seat is occupied
var ErrSeatTaken = errors.New("seat taken")

// ErrGameInProgress is returned for lobby operations attempted mid-game
var ErrGameInProgress = errors.New("game in progress")

// ErrMustSitFirst is returned when an unseated player readies up
var ErrMustSitFirst = errors.New("must sit first")

// ErrPlayerNotFound is returned when the player is not in the room
var ErrPlayerNotFound = errors.New("player not found")

// ErrNotOwner is returned when someone other than the room owner ends the session
var ErrNotOwner = errors.New("only the room owner can end the game")

// ErrHandInProgress is returned when the session is ended mid-hand
var ErrHandInProgress = errors.New("cannot end game during an active hand")
