package gamesession

import (
	"github.com/marbeld/tunequiz/internal/models"
)

// CreateGameSessionInput holds parameters for CreateGameSession
type CreateGameSessionInput struct {
	Session *models.GameSession
}

// UpdateGameSessionInput holds parameters for UpdateGameSession
type UpdateGameSessionInput struct {
	SessionID string

	// Round is the new round pointer
	Round int

	// Ended marks the session as finished
	Ended bool
}

// GetGameSessionInput holds parameters for GetGameSession
type GetGameSessionInput struct {
	SessionID string
}

// GetGameSessionOutput holds the result of GetGameSession
type GetGameSessionOutput struct {
	Session *models.GameSession
}
