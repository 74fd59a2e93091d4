package media

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/marbeld/tunequiz/internal/repositories/media Repository

// Repository defines storage operations for the media library
type Repository interface {
	// SaveMedia persists a media item and its filter indexes
	SaveMedia(ctx context.Context, input *SaveMediaInput) error

	// GetMedia retrieves a single media item by ID
	GetMedia(ctx context.Context, input *GetMediaInput) (*GetMediaOutput, error)

	// GetRandomMedia returns up to Limit random media items matching the filters
	GetRandomMedia(ctx context.Context, input *GetRandomMediaInput) (*GetRandomMediaOutput, error)

	// GetMediaAnswers returns the stored answer strings for a media item
	GetMediaAnswers(ctx context.Context, input *GetMediaAnswersInput) (*GetMediaAnswersOutput, error)

	// AddAnswer appends an alternative answer to a media item
	AddAnswer(ctx context.Context, input *AddAnswerInput) error
}
