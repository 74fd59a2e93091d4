package playback

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/marbeld/tunequiz/internal/models"
	"github.com/marbeld/tunequiz/internal/transcode"
)

// Default timings. The hint cadence and timeout paddings are
// product-tuned; see the package tests for the behavior they pin down.
const (
	DefaultHintStartTime      = 20 * time.Second
	DefaultHintInterval       = 15 * time.Second
	DefaultMaxHints           = 5
	DefaultTimeoutPadding     = 15 * time.Second
	DefaultMinTimeout         = 35 * time.Second
	DefaultClipTimeout        = 45 * time.Second
	DefaultMinPlaybackTime    = 3 * time.Second
	DefaultShortClipThreshold = 30 * time.Second
	DefaultExtraTime          = 5 * time.Second
	DefaultDebounceTime       = 2 * time.Second
	DefaultSettleDelay        = 500 * time.Millisecond
	DefaultJoinReadyTimeout   = 5 * time.Second
	DefaultClipLength         = 30 * time.Second
)

// Config holds configuration and collaborators for the playback service
type Config struct {
	// Connector opens voice sessions on the chat platform
	Connector VoiceConnector

	// Transcoder renders playable artifacts
	Transcoder transcode.Transcoder

	// Clock drives all timers; tests inject a fake
	Clock clockwork.Clock

	// HintStartTime is the playback offset of the first hint; media
	// shorter than this gets no scheduled hints
	HintStartTime time.Duration

	// HintInterval is the spacing between consecutive hints
	HintInterval time.Duration

	// MaxHints bounds the number of scheduled hints per round
	MaxHints int

	// TimeoutPadding is added to the media duration for the fallback
	// timeout timer
	TimeoutPadding time.Duration

	// MinTimeout is the floor for the fallback timeout timer
	MinTimeout time.Duration

	// ClipTimeout is the fixed fallback window in clip mode
	ClipTimeout time.Duration

	// MinPlaybackTime guards against spurious idle signals right after
	// playback starts
	MinPlaybackTime time.Duration

	// ShortClipThreshold selects the short-media end-of-round path
	ShortClipThreshold time.Duration

	// ExtraTime is the guessing grace period after short media ends
	ExtraTime time.Duration

	// DebounceTime is the window during which duplicate terminal
	// signals are ignored
	DebounceTime time.Duration

	// SettleDelay is the pause after stopping a stream before starting
	// the next one
	SettleDelay time.Duration

	// JoinReadyTimeout bounds the wait for a voice connection to come up
	JoinReadyTimeout time.Duration

	// ClipLength is the excerpt length in clip mode
	ClipLength time.Duration
}

// JoinChannelInput holds parameters for JoinChannel
type JoinChannelInput struct {
	GuildID        string
	VoiceChannelID string

	// Listener receives round events for this guild
	Listener RoundListener
}

// PlayMediaInput holds parameters for PlayMedia
type PlayMediaInput struct {
	GuildID  string
	Media    *models.Media
	ClipMode bool
}
