package models

import (
	"time"
)

// Player holds a user's aggregate stats across all games
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Name is the display name of the player
	Name string

	// GamesPlayed is the number of finished games the player took part in
	GamesPlayed int

	// CorrectAnswers is the number of finished games with at least one
	// correct guess
	CorrectAnswers int

	// UpdatedAt is when the stats were last written
	UpdatedAt time.Time
}
