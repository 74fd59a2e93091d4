package game

import (
	"sort"
	"sync"

	"github.com/marbeld/tunequiz/internal/models"
)

// playerScore is one participant's running state inside a session
type playerScore struct {
	name  string
	score int
}

// Session is the in-memory round state machine for one running game.
// It is created by the service's CreateSession and mutated only through
// the service's coordinator methods.
type Session struct {
	mu sync.Mutex

	// ID is the persisted game session record ID
	ID string

	// GuildID is the Discord guild the game runs in
	GuildID string

	// ChannelKey is the channel the session claims exclusivity on (the
	// parent channel when the game was started from a thread)
	ChannelKey string

	// VoiceChannelID is where playback happens
	VoiceChannelID string

	// Playlist is the shuffled, truncated media list for this game
	Playlist []*models.Media

	// TotalRounds is the number of rounds the game was created with
	TotalRounds int

	// ClipMode plays random excerpts instead of full tracks
	ClipMode bool

	currentRound int
	players      map[string]*playerScore
	joinOrder    []string
	skipVotes    map[string]struct{}
	guessed      map[string]struct{}
	lastPlayedID string
}

// NewSession creates a session with the round pointer at zero (not started)
func NewSession(id, guildID, channelKey, voiceChannelID string, playlist []*models.Media, totalRounds int, clipMode bool) *Session {
	return &Session{
		ID:             id,
		GuildID:        guildID,
		ChannelKey:     channelKey,
		VoiceChannelID: voiceChannelID,
		Playlist:       playlist,
		TotalRounds:    totalRounds,
		ClipMode:       clipMode,
		players:        make(map[string]*playerScore),
		skipVotes:      make(map[string]struct{}),
		guessed:        make(map[string]struct{}),
	}
}

// NextRound advances the round pointer. It captures the outgoing media
// into the last-played slot, clears the per-round skip votes and
// guessed-set, and returns the next media — or nil once the pointer
// passes the configured rounds or the playlist length. Calling it past
// termination keeps returning nil.
func (s *Session) NextRound() *models.Media {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m := s.currentMediaLocked(); m != nil {
		s.lastPlayedID = m.ID
	}
	s.skipVotes = make(map[string]struct{})
	s.guessed = make(map[string]struct{})
	s.currentRound++

	return s.currentMediaLocked()
}

// CurrentRound returns the round pointer (0 = not started)
func (s *Session) CurrentRound() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentRound
}

// GetCurrentMedia returns the media for the current round, or nil when
// the session has not started or has run out of rounds
func (s *Session) GetCurrentMedia() *models.Media {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentMediaLocked()
}

func (s *Session) currentMediaLocked() *models.Media {
	if s.currentRound < 1 || s.currentRound > s.TotalRounds || s.currentRound > len(s.Playlist) {
		return nil
	}
	return s.Playlist[s.currentRound-1]
}

// IsLastRound reports whether the current round is the final one
func (s *Session) IsLastRound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentRound == s.TotalRounds || s.currentRound == len(s.Playlist)
}

// LastPlayedMediaID returns the media played in the previous round
func (s *Session) LastPlayedMediaID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPlayedID
}

// AddPlayer registers a player. The first registration wins; a second
// call with a different name keeps the original.
func (s *Session) AddPlayer(playerID, playerName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[playerID]; ok {
		return
	}
	s.players[playerID] = &playerScore{name: playerName}
	s.joinOrder = append(s.joinOrder, playerID)
}

// AddPoint increments an existing player's score. Unknown players are
// ignored.
func (s *Session) AddPoint(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.players[playerID]; ok {
		p.score++
	}
}

// PlayerCount returns the number of registered players
func (s *Session) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

// Score returns a player's score (0 for unknown players)
func (s *Session) Score(playerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.players[playerID]; ok {
		return p.score
	}
	return 0
}

// GetLeaderboard returns players sorted by score descending. Ties keep
// join order: the sort is stable over the insertion sequence.
func (s *Session) GetLeaderboard() *models.Leaderboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]*models.LeaderboardEntry, 0, len(s.joinOrder))
	for _, id := range s.joinOrder {
		entries = append(entries, &models.LeaderboardEntry{
			PlayerID:   id,
			PlayerName: s.players[id].name,
			Score:      s.players[id].score,
		})
	}

	// Stable sort keeps equal scores in join order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	return &models.Leaderboard{
		SessionID: s.ID,
		Entries:   entries,
	}
}

// AddSkipVote records a skip vote. Duplicate votes from the same player
// do not increase the count.
func (s *Session) AddSkipVote(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipVotes[playerID] = struct{}{}
}

// GetSkipVotes returns the number of distinct skip votes this round
func (s *Session) GetSkipVotes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.skipVotes)
}

// ResetSkipVotes clears the skip votes for the current round
func (s *Session) ResetSkipVotes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipVotes = make(map[string]struct{})
}

// MarkAnswerGuessed records that the round for mediaID has been scored,
// guarding against double scoring
func (s *Session) MarkAnswerGuessed(mediaID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guessed[mediaID] = struct{}{}
}

// TryResolve marks the round for mediaID as scored and reports whether
// this call won the race to do so. A false return means another guess
// already resolved the round.
func (s *Session) TryResolve(mediaID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.guessed[mediaID]; ok {
		return false
	}
	s.guessed[mediaID] = struct{}{}
	return true
}

// IsAnswerGuessed reports whether the round for mediaID is already scored
func (s *Session) IsAnswerGuessed(mediaID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.guessed[mediaID]
	return ok
}
