package playback

import (
	"context"

	"github.com/marbeld/tunequiz/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/marbeld/tunequiz/internal/services/playback Service,VoiceConnector,VoiceSession,RoundListener

// Service orchestrates per-guild voice playback: artifact resolution,
// hint and timeout timers, and end-of-round signalling
type Service interface {
	// JoinChannel tears down any prior connection for the guild and
	// opens a new one, waiting for it to become ready
	JoinChannel(ctx context.Context, input *JoinChannelInput) error

	// PlayMedia starts a round's playback for a guild
	PlayMedia(ctx context.Context, input *PlayMediaInput) error

	// StopPlayback stops any current playback and cancels round timers
	StopPlayback(guildID string)

	// HandlePlaybackEnd processes a track-ended signal from the
	// platform (or from the fallback timeout timer)
	HandlePlaybackEnd(guildID string)

	// LeaveChannel stops playback, destroys the connection and clears
	// all per-guild state
	LeaveChannel(guildID string)

	// IsPlaying reports whether the guild currently has active playback
	IsPlaying(guildID string) bool
}

// RoundListener receives round events for a guild. It is registered at
// session start via JoinChannel.
type RoundListener interface {
	// OnHint is called when a scheduled hint fires; level is 0-based
	OnHint(guildID string, media *models.Media, level int)

	// OnRoundEnd is called exactly once per round when playback is over
	OnRoundEnd(guildID string)
}

// VoiceConnector opens voice sessions on the chat platform
type VoiceConnector interface {
	// Join connects to a guild voice channel
	Join(ctx context.Context, guildID, channelID string) (VoiceSession, error)
}

// VoiceSession is one live voice connection and its player
type VoiceSession interface {
	// Ready is closed once the connection can accept audio
	Ready() <-chan struct{}

	// Play starts streaming the file at path
	Play(path string) error

	// Stop interrupts the current stream
	Stop()

	// Close destroys the connection
	Close()
}
