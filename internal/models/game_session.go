package models

import (
	"time"
)

// GameSession is the persisted record of one guessing game
type GameSession struct {
	// ID is the unique identifier for this game session
	ID string

	// GuildID is the Discord server/guild this session belongs to
	GuildID string

	// ChannelID is the text channel key the session is bound to
	ChannelID string

	// Rounds is the number of rounds the game was created with
	Rounds int

	// CurrentRound is the last persisted round pointer
	CurrentRound int

	// Ended indicates the game has finished
	Ended bool

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time
}
