package media

import (
	"github.com/marbeld/tunequiz/internal/models"
)

// Filters narrows random media selection
type Filters struct {
	// Artist restricts selection to one artist (exact, case-insensitive)
	Artist string

	// Tag restricts selection to one tag
	Tag string
}

// SaveMediaInput holds parameters for SaveMedia
type SaveMediaInput struct {
	Media *models.Media
}

// GetMediaInput holds parameters for GetMedia
type GetMediaInput struct {
	MediaID string
}

// GetMediaOutput holds the result of GetMedia
type GetMediaOutput struct {
	Media *models.Media
}

// GetRandomMediaInput holds parameters for GetRandomMedia
type GetRandomMediaInput struct {
	Filters Filters
	Limit   int
}

// GetRandomMediaOutput holds the result of GetRandomMedia
type GetRandomMediaOutput struct {
	Media []*models.Media
}

// GetMediaAnswersInput holds parameters for GetMediaAnswers
type GetMediaAnswersInput struct {
	MediaID string
}

// GetMediaAnswersOutput holds the result of GetMediaAnswers
type GetMediaAnswersOutput struct {
	Answers []string
}

// AddAnswerInput holds parameters for AddAnswer
type AddAnswerInput struct {
	MediaID string
	Answer  string
}
