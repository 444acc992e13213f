// internal/game/errors.go
package game

import "errors"

// Rejection errors. Each one indicates a refused command, not a corrupted
// match: the state is left untouched and the message is relayed verbatim to
// the presentation side.
var (
	// ErrCardNotHeld indicates the named card is not in the acting hand.
	ErrCardNotHeld = errors.New("you don't hold that card")

	// ErrIllegalPlay indicates the card matches neither the current color
	// nor the current value and is not wild.
	ErrIllegalPlay = errors.New("that card can't be played right now")

	// ErrMissingColorChoice indicates a wild-family play without a declared color.
	ErrMissingColorChoice = errors.New("you must choose a color for that card")

	// ErrNotYourTurn indicates an action attempted out of turn.
	ErrNotYourTurn = errors.New("it's not your turn")

	// ErrMatchAlreadyEnded indicates an action against a finished match.
	ErrMatchAlreadyEnded = errors.New("the match has already ended")

	// ErrNoActiveMatch indicates a registry miss for the player identity.
	ErrNoActiveMatch = errors.New("you have no active match")
)
