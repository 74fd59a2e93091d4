package game

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/marbeld/tunequiz/internal/common/uuid"
	"github.com/marbeld/tunequiz/internal/models"
	"github.com/marbeld/tunequiz/internal/repositories/gamesession"
	"github.com/marbeld/tunequiz/internal/repositories/media"
	"github.com/marbeld/tunequiz/internal/repositories/player"
	"github.com/marbeld/tunequiz/internal/services/playback"
)

// Defaults for the coordinator's tunables
const (
	DefaultPoolRetries     = 3
	DefaultMinPool         = 5
	DefaultInterRoundDelay = 3 * time.Second
	DefaultSettleDelay     = 500 * time.Millisecond
)

// Config holds configuration and collaborators for the game service
type Config struct {
	// MediaRepo supplies the media pool and stored answers
	MediaRepo media.Repository

	// GameSessionRepo persists game session records
	GameSessionRepo gamesession.Repository

	// PlayerRepo persists player aggregate stats
	PlayerRepo player.Repository

	// Playback drives voice playback between rounds
	Playback playback.Service

	// Clock drives inter-round delays; tests inject a fake
	Clock clockwork.Clock

	// UUID generates session record IDs
	UUID uuid.UUID

	// PoolRetries is how often an undersized media pool is refetched
	PoolRetries int

	// MinPool is the smallest pool a game can be created from
	MinPool int

	// InterRoundDelay is the pause between a round ending and the next
	// one starting
	InterRoundDelay time.Duration

	// SettleDelay is the pause after stopping residual playback
	SettleDelay time.Duration

	// Deterministic replaces the playlist shuffle with a stable
	// id-ordered sort; only for tests
	Deterministic bool
}

// CreateSessionInput holds parameters for CreateSession
type CreateSessionInput struct {
	GuildID   string
	ChannelID string

	// ThreadParentID is the parent channel when the command came from a
	// thread; the session then claims exclusivity at the parent level
	ThreadParentID string

	VoiceChannelID string
	Rounds         int
	ClipMode       bool
	Filters        media.Filters
}

// CreateSessionOutput holds the result of CreateSession
type CreateSessionOutput struct {
	Session *Session

	// Rounds is the effective round count, possibly shrunk to the pool size
	Rounds int
}

// AdvanceRoundInput holds parameters for AdvanceRound
type AdvanceRoundInput struct {
	ChannelKey string

	// WinnerID awards the outgoing round to a player before advancing
	WinnerID   string
	WinnerName string
}

// AdvanceRoundOutput holds the result of AdvanceRound
type AdvanceRoundOutput struct {
	// Advanced is false when another transition was already in flight
	Advanced bool

	// GameOver means there is no next round
	GameOver bool

	// Media is the next round's media when the game continues
	Media *models.Media

	// Round is the new round number
	Round int

	// LastRound marks the new round as the final one
	LastRound bool

	// PlaybackFailed means the next round's media could not be played;
	// the caller should advance again
	PlaybackFailed bool
}

// ProcessGuessInput holds parameters for ProcessGuess
type ProcessGuessInput struct {
	ChannelKey string
	PlayerID   string
	PlayerName string
	Text       string
}

// ProcessGuessOutput holds the result of ProcessGuess
type ProcessGuessOutput struct {
	Correct bool
	Close   bool

	// AlreadyResolved means the round was scored before this guess landed
	AlreadyResolved bool

	// Media is the current round's media
	Media *models.Media

	// Score is the guesser's score after this guess
	Score int
}

// ProcessSkipInput holds parameters for ProcessSkip
type ProcessSkipInput struct {
	ChannelKey string
	PlayerID   string
}

// ProcessSkipOutput holds the result of ProcessSkip
type ProcessSkipOutput struct {
	// Accepted is false when the vote was rejected (round resolved or a
	// transition in flight)
	Accepted bool

	// Skipped means quorum was reached and the round is over
	Skipped bool

	Votes    int
	Required int
}

// AddAnswerInput holds parameters for AddAnswer
type AddAnswerInput struct {
	ChannelKey string
	Answer     string
}

// AddAnswerOutput holds the result of AddAnswer
type AddAnswerOutput struct {
	// MediaID is the media the answer was attached to
	MediaID string

	// Title is that media's display title
	Title string
}

// EndSessionInput holds parameters for EndSession
type EndSessionInput struct {
	ChannelKey string
}

// EndSessionOutput holds the result of EndSession
type EndSessionOutput struct {
	Leaderboard *models.Leaderboard
}
