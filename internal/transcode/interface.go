package transcode

import (
	"context"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_transcoder.go github.com/marbeld/tunequiz/internal/transcode Transcoder

// Transcoder renders playable artifacts out of uploaded media files
type Transcoder interface {
	// Normalize renders a loudness-normalized artifact for the source
	// file and reports its duration
	Normalize(ctx context.Context, sourcePath string) (*NormalizeResult, error)

	// ExtractClip cuts a bounded excerpt out of an artifact
	ExtractClip(ctx context.Context, sourcePath string, start, length time.Duration) (string, error)

	// Probe reports the duration of a media file
	Probe(ctx context.Context, path string) (time.Duration, error)
}

// NormalizeResult describes a rendered artifact
type NormalizeResult struct {
	// ArtifactPath is the rendered file
	ArtifactPath string

	// Duration is the playable length of the artifact
	Duration time.Duration
}
