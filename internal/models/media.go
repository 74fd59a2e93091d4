package models

import (
	"time"
)

// Media represents a playable track in the library
type Media struct {
	// ID is the unique identifier for the media item
	ID string

	// Title is the primary answer shown after a round resolves
	Title string

	// Artist is the performing artist, used for filtering
	Artist string

	// Tags are free-form labels used for filtering (genre, decade, ...)
	Tags []string

	// FilePath is the originally uploaded file
	FilePath string

	// NormalizedPath is the precomputed loudness-normalized artifact,
	// empty when no artifact has been rendered yet
	NormalizedPath string

	// Duration is the playable length, known once the file has been probed
	Duration time.Duration

	// Answers holds the stored answer strings (primary + alternatives)
	Answers []string

	// AddedBy is the user ID who uploaded the media
	AddedBy string

	// CreatedAt is when the media was added
	CreatedAt time.Time
}

// PrimaryAnswer returns the answer displayed in round summaries.
func (m *Media) PrimaryAnswer() string {
	if len(m.Answers) > 0 {
		return m.Answers[0]
	}
	return m.Title
}
