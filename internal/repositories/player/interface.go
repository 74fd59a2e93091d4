package player

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/marbeld/tunequiz/internal/repositories/player Repository

// Repository defines storage operations for player aggregate stats
type Repository interface {
	// UpdateUser increments a player's games-played counter, and the
	// correct-answer counter when WasCorrect is set
	UpdateUser(ctx context.Context, input *UpdateUserInput) error

	// GetPlayer retrieves a player's aggregate stats
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)
}
