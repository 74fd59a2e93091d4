package playback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/marbeld/tunequiz/internal/models"
	"github.com/marbeld/tunequiz/internal/transcode"
)

// Define errors
var (
	ErrNotConnected = errors.New("no voice connection for guild")
	ErrJoinTimeout  = errors.New("voice connection did not become ready")
	ErrUnplayable   = errors.New("media is marked unplayable")
)

// guildState is all mutable playback state for one guild. Timers are
// owned here and must be cancelled on round start, stop and disconnect.
type guildState struct {
	session  VoiceSession
	listener RoundListener

	current   *models.Media
	isPlaying bool
	clipMode  bool
	startedAt time.Time
	duration  time.Duration

	hintTimers   []clockwork.Timer
	timeoutTimer clockwork.Timer
	graceTimer   clockwork.Timer
	debounced    bool

	// playSeq increments on every round start and stop; a pending grace
	// timer from an earlier round carries a stale value and is ignored
	playSeq uint64

	// tempFiles are guild-scoped artifacts (clips) removed on leave
	tempFiles map[string]struct{}
}

// service implements the Service interface
type service struct {
	config     *Config
	connector  VoiceConnector
	transcoder transcode.Transcoder
	clock      clockwork.Clock

	mu     sync.Mutex
	guilds map[string]*guildState

	// unplayable media IDs are skipped for the rest of the process so a
	// broken file is not re-transcoded every round
	unplayable map[string]bool
}

// New creates a new playback service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Connector == nil {
		return nil, errors.New("voice connector cannot be nil")
	}
	if cfg.Transcoder == nil {
		return nil, errors.New("transcoder cannot be nil")
	}

	applyDefaults(cfg)

	return &service{
		config:     cfg,
		connector:  cfg.Connector,
		transcoder: cfg.Transcoder,
		clock:      cfg.Clock,
		guilds:     make(map[string]*guildState),
		unplayable: make(map[string]bool),
	}, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.HintStartTime == 0 {
		cfg.HintStartTime = DefaultHintStartTime
	}
	if cfg.HintInterval == 0 {
		cfg.HintInterval = DefaultHintInterval
	}
	if cfg.MaxHints == 0 {
		cfg.MaxHints = DefaultMaxHints
	}
	if cfg.TimeoutPadding == 0 {
		cfg.TimeoutPadding = DefaultTimeoutPadding
	}
	if cfg.MinTimeout == 0 {
		cfg.MinTimeout = DefaultMinTimeout
	}
	if cfg.ClipTimeout == 0 {
		cfg.ClipTimeout = DefaultClipTimeout
	}
	if cfg.MinPlaybackTime == 0 {
		cfg.MinPlaybackTime = DefaultMinPlaybackTime
	}
	if cfg.ShortClipThreshold == 0 {
		cfg.ShortClipThreshold = DefaultShortClipThreshold
	}
	if cfg.ExtraTime == 0 {
		cfg.ExtraTime = DefaultExtraTime
	}
	if cfg.DebounceTime == 0 {
		cfg.DebounceTime = DefaultDebounceTime
	}
	if cfg.SettleDelay == 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	if cfg.JoinReadyTimeout == 0 {
		cfg.JoinReadyTimeout = DefaultJoinReadyTimeout
	}
	if cfg.ClipLength == 0 {
		cfg.ClipLength = DefaultClipLength
	}
}

// JoinChannel tears down any prior connection for the guild and opens a
// new one, waiting up to JoinReadyTimeout for it to become ready
func (s *service) JoinChannel(ctx context.Context, input *JoinChannelInput) error {
	if input == nil || input.GuildID == "" || input.VoiceChannelID == "" {
		return errors.New("guild ID and voice channel ID are required")
	}

	s.LeaveChannel(input.GuildID)

	sess, err := s.connector.Join(ctx, input.GuildID, input.VoiceChannelID)
	if err != nil {
		return fmt.Errorf("failed to join voice channel: %w", err)
	}

	readyTimer := s.clock.NewTimer(s.config.JoinReadyTimeout)
	defer readyTimer.Stop()

	select {
	case <-sess.Ready():
	case <-readyTimer.Chan():
		sess.Close()
		return ErrJoinTimeout
	case <-ctx.Done():
		sess.Close()
		return ctx.Err()
	}

	s.mu.Lock()
	s.guilds[input.GuildID] = &guildState{
		session:   sess,
		listener:  input.Listener,
		tempFiles: make(map[string]struct{}),
	}
	s.mu.Unlock()

	slog.Info("joined voice channel", "guild", input.GuildID, "channel", input.VoiceChannelID)
	return nil
}

// PlayMedia starts a round's playback for a guild
func (s *service) PlayMedia(ctx context.Context, input *PlayMediaInput) error {
	if input == nil || input.GuildID == "" || input.Media == nil {
		return errors.New("guild ID and media are required")
	}

	s.mu.Lock()
	g := s.guilds[input.GuildID]
	if g == nil {
		s.mu.Unlock()
		return ErrNotConnected
	}
	if s.unplayable[input.Media.ID] {
		s.mu.Unlock()
		return ErrUnplayable
	}
	wasPlaying := g.isPlaying
	if wasPlaying {
		g.session.Stop()
		g.isPlaying = false
	}
	s.clearTimersLocked(g)
	s.mu.Unlock()

	if wasPlaying {
		s.clock.Sleep(s.config.SettleDelay)
	}

	path, duration, err := s.resolveArtifact(ctx, input.Media)
	if err != nil {
		s.mu.Lock()
		s.unplayable[input.Media.ID] = true
		s.mu.Unlock()
		return err
	}

	if input.ClipMode {
		path, duration = s.deriveClip(ctx, input.GuildID, path, duration)
	}

	s.mu.Lock()
	g = s.guilds[input.GuildID]
	if g == nil {
		s.mu.Unlock()
		return ErrNotConnected
	}
	if err := g.session.Play(path); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to start playback: %w", err)
	}
	g.playSeq++
	g.current = input.Media
	g.isPlaying = true
	g.clipMode = input.ClipMode
	g.startedAt = s.clock.Now()
	g.duration = duration
	g.debounced = false
	s.scheduleHintsLocked(g, input.GuildID, input.Media, duration)

	timeout := duration + s.config.TimeoutPadding
	if timeout < s.config.MinTimeout {
		timeout = s.config.MinTimeout
	}
	if input.ClipMode {
		timeout = s.config.ClipTimeout
	}
	guildID := input.GuildID
	g.timeoutTimer = s.clock.AfterFunc(timeout, func() {
		s.HandlePlaybackEnd(guildID)
	})
	s.mu.Unlock()

	slog.Info("playback started",
		"guild", input.GuildID,
		"media", input.Media.ID,
		"duration", duration,
		"clip_mode", input.ClipMode)
	return nil
}

// resolveArtifact picks the playable file for a media item: the
// precomputed normalized artifact when present, otherwise a slow-path
// transcode, degrading to the original file if that fails.
func (s *service) resolveArtifact(ctx context.Context, media *models.Media) (string, time.Duration, error) {
	if media.NormalizedPath != "" {
		duration := media.Duration
		if duration == 0 {
			probed, err := s.transcoder.Probe(ctx, media.NormalizedPath)
			if err != nil {
				return "", 0, fmt.Errorf("failed to probe artifact: %w", err)
			}
			duration = probed
		}
		return media.NormalizedPath, duration, nil
	}

	res, err := s.transcoder.Normalize(ctx, media.FilePath)
	if err == nil {
		return res.ArtifactPath, res.Duration, nil
	}
	slog.Warn("normalization failed, falling back to original file",
		"media", media.ID, "error", err)

	duration, perr := s.transcoder.Probe(ctx, media.FilePath)
	if perr != nil {
		return "", 0, fmt.Errorf("media %s is unplayable: %w", media.ID, err)
	}
	return media.FilePath, duration, nil
}

// deriveClip cuts a random-offset excerpt, falling back to the full
// artifact when extraction fails
func (s *service) deriveClip(ctx context.Context, guildID, path string, duration time.Duration) (string, time.Duration) {
	clipLen := s.config.ClipLength
	if duration <= clipLen {
		return path, duration
	}

	start := time.Duration(rand.Int63n(int64(duration - clipLen)))
	clipPath, err := s.transcoder.ExtractClip(ctx, path, start, clipLen)
	if err != nil {
		slog.Warn("clip extraction failed, playing full artifact",
			"guild", guildID, "error", err)
		return path, duration
	}

	s.mu.Lock()
	if g := s.guilds[guildID]; g != nil {
		g.tempFiles[clipPath] = struct{}{}
	}
	s.mu.Unlock()

	return clipPath, clipLen
}

// scheduleHintsLocked arms up to MaxHints hint timers. Each timer
// re-checks at fire time that the guild is still playing the same media.
func (s *service) scheduleHintsLocked(g *guildState, guildID string, media *models.Media, duration time.Duration) {
	if duration < s.config.HintStartTime {
		return
	}

	mediaID := media.ID
	for k := 0; k < s.config.MaxHints; k++ {
		at := s.config.HintStartTime + time.Duration(k)*s.config.HintInterval
		if at > duration {
			break
		}
		level := k
		t := s.clock.AfterFunc(at, func() {
			s.fireHint(guildID, mediaID, level)
		})
		g.hintTimers = append(g.hintTimers, t)
	}
}

func (s *service) fireHint(guildID, mediaID string, level int) {
	s.mu.Lock()
	g := s.guilds[guildID]
	if g == nil || !g.isPlaying || g.current == nil || g.current.ID != mediaID {
		s.mu.Unlock()
		return
	}
	listener := g.listener
	media := g.current
	s.mu.Unlock()

	if listener != nil {
		listener.OnHint(guildID, media, level)
	}
}

// HandlePlaybackEnd processes a track-ended signal. Signals arriving
// while nothing is playing, or within MinPlaybackTime of the start, are
// dropped as spurious.
func (s *service) HandlePlaybackEnd(guildID string) {
	s.mu.Lock()
	g := s.guilds[guildID]
	if g == nil || !g.isPlaying {
		s.mu.Unlock()
		return
	}
	if s.clock.Since(g.startedAt) < s.config.MinPlaybackTime {
		s.mu.Unlock()
		return
	}

	g.isPlaying = false
	duration := g.duration
	listener := g.listener
	media := g.current
	seq := g.playSeq
	s.clearTimersLocked(g)

	short := duration <= s.config.ShortClipThreshold
	immediateHint := short && duration < s.config.HintStartTime
	if short {
		// Armed under the lock so a StopPlayback or PlayMedia that
		// follows can cancel it before it fires.
		g.graceTimer = s.clock.AfterFunc(s.config.ExtraTime, func() {
			s.triggerEndCallback(guildID, seq)
		})
	}
	s.mu.Unlock()

	if immediateHint && listener != nil && media != nil {
		// Short media never got a scheduled hint; give one now before
		// the grace period runs out.
		listener.OnHint(guildID, media, 0)
	}

	if !short {
		s.triggerEndCallback(guildID, seq)
	}
}

// triggerEndCallback fires OnRoundEnd at most once per DebounceTime, so
// the fallback timeout and a genuine platform end-signal cannot both
// advance the same round. A seq that no longer matches the guild's
// playSeq belongs to a round that already ended and is dropped.
func (s *service) triggerEndCallback(guildID string, seq uint64) {
	s.mu.Lock()
	g := s.guilds[guildID]
	if g == nil || g.debounced || g.playSeq != seq {
		s.mu.Unlock()
		return
	}
	g.debounced = true
	listener := g.listener
	s.clock.AfterFunc(s.config.DebounceTime, func() {
		s.mu.Lock()
		if g := s.guilds[guildID]; g != nil {
			g.debounced = false
		}
		s.mu.Unlock()
	})
	s.mu.Unlock()

	if listener != nil {
		listener.OnRoundEnd(guildID)
	}
}

// StopPlayback stops any current playback and cancels round timers
func (s *service) StopPlayback(guildID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.guilds[guildID]
	if g == nil {
		return
	}
	if g.isPlaying {
		g.session.Stop()
	}
	g.isPlaying = false
	g.current = nil
	g.playSeq++
	s.clearTimersLocked(g)
}

// LeaveChannel stops playback, destroys the connection and clears all
// per-guild state, including temporary clip artifacts
func (s *service) LeaveChannel(guildID string) {
	s.mu.Lock()
	g := s.guilds[guildID]
	if g == nil {
		s.mu.Unlock()
		return
	}
	delete(s.guilds, guildID)
	s.clearTimersLocked(g)
	wasPlaying := g.isPlaying
	s.mu.Unlock()

	if wasPlaying {
		g.session.Stop()
	}
	g.session.Close()

	for f := range g.tempFiles {
		if err := os.Remove(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Warn("failed to remove temp artifact", "path", f, "error", err)
		}
	}

	slog.Info("left voice channel", "guild", guildID)
}

// IsPlaying reports whether the guild currently has active playback
func (s *service) IsPlaying(guildID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.guilds[guildID]
	return g != nil && g.isPlaying
}

// clearTimersLocked cancels every pending hint and timeout timer for
// the guild. Callers hold s.mu.
func (s *service) clearTimersLocked(g *guildState) {
	for _, t := range g.hintTimers {
		t.Stop()
	}
	g.hintTimers = nil
	if g.timeoutTimer != nil {
		g.timeoutTimer.Stop()
		g.timeoutTimer = nil
	}
	if g.graceTimer != nil {
		g.graceTimer.Stop()
		g.graceTimer = nil
	}
}
