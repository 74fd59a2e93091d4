package game

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/marbeld/tunequiz/internal/common/uuid"
	"github.com/marbeld/tunequiz/internal/match"
	"github.com/marbeld/tunequiz/internal/models"
	"github.com/marbeld/tunequiz/internal/repositories/gamesession"
	"github.com/marbeld/tunequiz/internal/repositories/media"
	"github.com/marbeld/tunequiz/internal/repositories/player"
	"github.com/marbeld/tunequiz/internal/services/playback"
)

type service struct {
	mediaRepo       media.Repository
	gameSessionRepo gamesession.Repository
	playerRepo      player.Repository
	playback        playback.Service
	clock           clockwork.Clock
	uuider          uuid.UUID

	poolRetries     int
	minPool         int
	interRoundDelay time.Duration
	settleDelay     time.Duration
	deterministic   bool

	mu       sync.Mutex
	sessions map[string]*Session
	inFlight map[string]bool
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("cfg is required")
	}

	if cfg.MediaRepo == nil {
		return nil, errors.New("cfg.MediaRepo is required")
	}

	if cfg.GameSessionRepo == nil {
		return nil, errors.New("cfg.GameSessionRepo is required")
	}

	if cfg.PlayerRepo == nil {
		return nil, errors.New("cfg.PlayerRepo is required")
	}

	if cfg.Playback == nil {
		return nil, errors.New("cfg.Playback is required")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}

	uuider := cfg.UUID
	if uuider == nil {
		uuider = uuid.New()
	}

	poolRetries := cfg.PoolRetries
	if poolRetries == 0 {
		poolRetries = DefaultPoolRetries
	}

	minPool := cfg.MinPool
	if minPool == 0 {
		minPool = DefaultMinPool
	}

	interRoundDelay := cfg.InterRoundDelay
	if interRoundDelay == 0 {
		interRoundDelay = DefaultInterRoundDelay
	}

	settleDelay := cfg.SettleDelay
	if settleDelay == 0 {
		settleDelay = DefaultSettleDelay
	}

	return &service{
		mediaRepo:       cfg.MediaRepo,
		gameSessionRepo: cfg.GameSessionRepo,
		playerRepo:      cfg.PlayerRepo,
		playback:        cfg.Playback,
		clock:           clk,
		uuider:          uuider,
		poolRetries:     poolRetries,
		minPool:         minPool,
		interRoundDelay: interRoundDelay,
		settleDelay:     settleDelay,
		deterministic:   cfg.Deterministic,
		sessions:        make(map[string]*Session),
		inFlight:        make(map[string]bool),
	}, nil
}

// ChannelKey resolves the exclusivity key for a command's origin. Games
// started from a thread claim the parent channel.
func ChannelKey(channelID, threadParentID string) string {
	if threadParentID != "" {
		return threadParentID
	}
	return channelID
}

func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input.Rounds < 1 {
		return nil, ErrInvalidRounds
	}

	key := ChannelKey(input.ChannelID, input.ThreadParentID)
	if s.GetSession(key) != nil {
		return nil, ErrSessionExists
	}

	pool, err := s.fetchPool(ctx, input.Filters, input.Rounds)
	if err != nil {
		return nil, err
	}

	rounds := input.Rounds
	if len(pool) < s.minPool {
		return nil, ErrInsufficientMedia
	}
	if len(pool) < rounds {
		slog.Warn("shrinking game to media pool size",
			"guild_id", input.GuildID,
			"requested", rounds,
			"pool", len(pool))
		rounds = len(pool)
	}

	playlist := make([]*models.Media, len(pool))
	copy(playlist, pool)
	if s.deterministic {
		sort.Slice(playlist, func(i, j int) bool {
			return playlist[i].ID < playlist[j].ID
		})
	} else {
		rand.Shuffle(len(playlist), func(i, j int) {
			playlist[i], playlist[j] = playlist[j], playlist[i]
		})
	}
	playlist = playlist[:rounds]

	sess := NewSession(s.uuider.NewUUID(), input.GuildID, key, input.VoiceChannelID, playlist, rounds, input.ClipMode)

	s.mu.Lock()
	if _, ok := s.sessions[key]; ok {
		s.mu.Unlock()
		return nil, ErrSessionExists
	}
	s.sessions[key] = sess
	s.mu.Unlock()

	now := s.clock.Now()
	err = s.gameSessionRepo.CreateGameSession(ctx, &gamesession.CreateGameSessionInput{
		Session: &models.GameSession{
			ID:        sess.ID,
			GuildID:   input.GuildID,
			ChannelID: key,
			Rounds:    rounds,
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	if err != nil {
		s.mu.Lock()
		delete(s.sessions, key)
		s.mu.Unlock()
		return nil, err
	}

	slog.Info("game session created",
		"session_id", sess.ID,
		"guild_id", input.GuildID,
		"channel_key", key,
		"rounds", rounds,
		"clip_mode", input.ClipMode)

	return &CreateSessionOutput{
		Session: sess,
		Rounds:  rounds,
	}, nil
}

// fetchPool asks for twice the requested rounds and refetches a few
// times while the pool stays undersized
func (s *service) fetchPool(ctx context.Context, filters media.Filters, rounds int) ([]*models.Media, error) {
	var pool []*models.Media
	for attempt := 0; ; attempt++ {
		out, err := s.mediaRepo.GetRandomMedia(ctx, &media.GetRandomMediaInput{
			Filters: filters,
			Limit:   2 * rounds,
		})
		if err != nil {
			return nil, err
		}
		pool = out.Media
		if len(pool) >= rounds || attempt >= s.poolRetries {
			return pool, nil
		}
	}
}

func (s *service) GetSession(channelKey string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[channelKey]
}

// beginTransition claims the round-transition slot for a channel key.
// It returns false when another transition is already in flight.
func (s *service) beginTransition(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[key] {
		return false
	}
	s.inFlight[key] = true
	return true
}

func (s *service) endTransition(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

func (s *service) AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error) {
	sess := s.GetSession(input.ChannelKey)
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	if !s.beginTransition(input.ChannelKey) {
		return &AdvanceRoundOutput{}, nil
	}
	defer s.endTransition(input.ChannelKey)

	if input.WinnerID != "" {
		sess.AddPlayer(input.WinnerID, input.WinnerName)
		if m := sess.GetCurrentMedia(); m != nil && sess.TryResolve(m.ID) {
			sess.AddPoint(input.WinnerID)
		}
	}

	next := sess.NextRound()
	round := sess.CurrentRound()

	err := s.gameSessionRepo.UpdateGameSession(ctx, &gamesession.UpdateGameSessionInput{
		SessionID: sess.ID,
		Round:     round,
		Ended:     next == nil,
	})
	if err != nil {
		slog.Error("failed to persist round pointer",
			"session_id", sess.ID,
			"round", round,
			"error", err)
	}

	if next == nil {
		return &AdvanceRoundOutput{
			Advanced: true,
			GameOver: true,
			Round:    round,
		}, nil
	}

	out := &AdvanceRoundOutput{
		Advanced:  true,
		Media:     next,
		Round:     round,
		LastRound: sess.IsLastRound(),
	}

	if round > 1 {
		s.clock.Sleep(s.interRoundDelay)
	}
	s.playback.StopPlayback(sess.GuildID)
	s.clock.Sleep(s.settleDelay)

	err = s.playback.PlayMedia(ctx, &playback.PlayMediaInput{
		GuildID:  sess.GuildID,
		Media:    next,
		ClipMode: sess.ClipMode,
	})
	if err != nil {
		slog.Warn("failed to start round playback",
			"session_id", sess.ID,
			"media_id", next.ID,
			"round", round,
			"error", err)
		out.PlaybackFailed = true
	}

	return out, nil
}

func (s *service) ProcessGuess(ctx context.Context, input *ProcessGuessInput) (*ProcessGuessOutput, error) {
	sess := s.GetSession(input.ChannelKey)
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	current := sess.GetCurrentMedia()
	if current == nil {
		return &ProcessGuessOutput{}, nil
	}

	sess.AddPlayer(input.PlayerID, input.PlayerName)

	if sess.IsAnswerGuessed(current.ID) {
		return &ProcessGuessOutput{
			AlreadyResolved: true,
			Media:           current,
			Score:           sess.Score(input.PlayerID),
		}, nil
	}

	answers := current.Answers
	if out, err := s.mediaRepo.GetMediaAnswers(ctx, &media.GetMediaAnswersInput{MediaID: current.ID}); err == nil {
		answers = out.Answers
	}

	result := match.CheckAnswer(answers, input.Text)
	out := &ProcessGuessOutput{
		Close: result.Close,
		Media: current,
	}

	if result.Correct {
		if !sess.TryResolve(current.ID) {
			out.AlreadyResolved = true
			out.Score = sess.Score(input.PlayerID)
			return out, nil
		}
		sess.AddPoint(input.PlayerID)
		sess.ResetSkipVotes()
		out.Correct = true
	}

	out.Score = sess.Score(input.PlayerID)
	return out, nil
}

func (s *service) ProcessSkip(ctx context.Context, input *ProcessSkipInput) (*ProcessSkipOutput, error) {
	sess := s.GetSession(input.ChannelKey)
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	current := sess.GetCurrentMedia()
	if current == nil || sess.IsAnswerGuessed(current.ID) {
		return &ProcessSkipOutput{}, nil
	}

	// Hold the transition slot so a concurrent round advance cannot
	// interleave between the vote count and the stop.
	if !s.beginTransition(input.ChannelKey) {
		return &ProcessSkipOutput{}, nil
	}
	defer s.endTransition(input.ChannelKey)

	sess.AddSkipVote(input.PlayerID)
	votes := sess.GetSkipVotes()
	required := skipQuorum(sess.PlayerCount())

	out := &ProcessSkipOutput{
		Accepted: true,
		Votes:    votes,
		Required: required,
	}

	if votes >= required {
		if !sess.TryResolve(current.ID) {
			return &ProcessSkipOutput{}, nil
		}
		s.playback.StopPlayback(sess.GuildID)
		out.Skipped = true

		slog.Info("round skipped by vote",
			"session_id", sess.ID,
			"round", sess.CurrentRound(),
			"votes", votes)
	}

	return out, nil
}

// skipQuorum is a third of the registered players, rounded up, never
// fewer than two
func skipQuorum(players int) int {
	q := (players + 2) / 3
	if q < 2 {
		q = 2
	}
	return q
}

func (s *service) AddAnswer(ctx context.Context, input *AddAnswerInput) (*AddAnswerOutput, error) {
	sess := s.GetSession(input.ChannelKey)
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	mediaID := sess.LastPlayedMediaID()
	if mediaID == "" {
		return nil, ErrNoCompletedRound
	}

	err := s.mediaRepo.AddAnswer(ctx, &media.AddAnswerInput{
		MediaID: mediaID,
		Answer:  input.Answer,
	})
	if err != nil {
		return nil, err
	}

	title := ""
	if out, err := s.mediaRepo.GetMedia(ctx, &media.GetMediaInput{MediaID: mediaID}); err == nil {
		title = out.Media.Title
	}

	return &AddAnswerOutput{
		MediaID: mediaID,
		Title:   title,
	}, nil
}

func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	s.mu.Lock()
	sess, ok := s.sessions[input.ChannelKey]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	delete(s.sessions, input.ChannelKey)
	delete(s.inFlight, input.ChannelKey)
	s.mu.Unlock()

	s.playback.LeaveChannel(sess.GuildID)

	err := s.gameSessionRepo.UpdateGameSession(ctx, &gamesession.UpdateGameSessionInput{
		SessionID: sess.ID,
		Round:     sess.CurrentRound(),
		Ended:     true,
	})
	if err != nil {
		slog.Error("failed to mark session ended",
			"session_id", sess.ID,
			"error", err)
	}

	board := sess.GetLeaderboard()
	for _, entry := range board.Entries {
		err := s.playerRepo.UpdateUser(ctx, &player.UpdateUserInput{
			PlayerID:   entry.PlayerID,
			PlayerName: entry.PlayerName,
			WasCorrect: entry.Score > 0,
		})
		if err != nil {
			slog.Error("failed to update player stats",
				"player_id", entry.PlayerID,
				"error", err)
		}
	}

	slog.Info("game session ended",
		"session_id", sess.ID,
		"guild_id", sess.GuildID,
		"players", len(board.Entries))

	return &EndSessionOutput{Leaderboard: board}, nil
}
