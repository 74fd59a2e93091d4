package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/marbeld/tunequiz/internal/services/game Service

// Service is the session registry and round coordinator: it owns all
// running sessions and every cross-cutting game operation
type Service interface {
	// CreateSession builds a playlist, persists a session record and
	// registers the session under its channel key
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession returns the running session for a channel key, or nil
	GetSession(channelKey string) *Session

	// AdvanceRound moves a session to its next round, driving playback.
	// Concurrent calls for the same key are rejected with Advanced=false.
	AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error)

	// ProcessGuess scores a guess against the current round's answers
	ProcessGuess(ctx context.Context, input *ProcessGuessInput) (*ProcessGuessOutput, error)

	// ProcessSkip records a skip vote and reports whether quorum forced
	// the round over
	ProcessSkip(ctx context.Context, input *ProcessSkipInput) (*ProcessSkipOutput, error)

	// AddAnswer appends an alternative answer to the previous round's media
	AddAnswer(ctx context.Context, input *AddAnswerInput) (*AddAnswerOutput, error)

	// EndSession persists final stats and removes the session
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)
}
