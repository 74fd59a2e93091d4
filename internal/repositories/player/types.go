package player

import (
	"github.com/marbeld/tunequiz/internal/models"
)

// UpdateUserInput holds parameters for UpdateUser
type UpdateUserInput struct {
	PlayerID   string
	PlayerName string

	// WasCorrect records that the player finished a game with at least
	// one correct answer
	WasCorrect bool
}

// GetPlayerInput holds parameters for GetPlayer
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayerOutput holds the result of GetPlayer
type GetPlayerOutput struct {
	Player *models.Player
}
