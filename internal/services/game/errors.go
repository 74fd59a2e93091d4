package game

import "errors"

// Define errors
var (
	ErrSessionExists     = errors.New("a game is already running in this channel")
	ErrSessionNotFound   = errors.New("no game is running in this channel")
	ErrInsufficientMedia = errors.New("not enough media matching the filters")
	ErrInvalidRounds     = errors.New("round count must be positive")
	ErrNoCompletedRound  = errors.New("no round has finished yet")
)
