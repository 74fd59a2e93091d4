package gamesession

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/marbeld/tunequiz/internal/repositories/gamesession Repository

// Repository defines storage operations for game session records
type Repository interface {
	// CreateGameSession persists a new game session record
	CreateGameSession(ctx context.Context, input *CreateGameSessionInput) error

	// UpdateGameSession updates the round pointer and ended marker
	UpdateGameSession(ctx context.Context, input *UpdateGameSessionInput) error

	// GetGameSession retrieves a game session record by ID
	GetGameSession(ctx context.Context, input *GetGameSessionInput) (*GetGameSessionOutput, error)
}
