package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marbeld/tunequiz/internal/models"
)

func testPlaylist(ids ...string) []*models.Media {
	playlist := make([]*models.Media, 0, len(ids))
	for _, id := range ids {
		playlist = append(playlist, &models.Media{ID: id, Title: "Song " + id})
	}
	return playlist
}

func TestSessionNextRoundWalksPlaylist(t *testing.T) {
	s := NewSession("gs-1", "guild-1", "channel-1", "voice-1", testPlaylist("a", "b", "c"), 3, false)

	assert.Equal(t, 0, s.CurrentRound())
	assert.Nil(t, s.GetCurrentMedia())

	for i, want := range []string{"a", "b", "c"} {
		m := s.NextRound()
		assert.NotNil(t, m)
		assert.Equal(t, want, m.ID)
		assert.Equal(t, i+1, s.CurrentRound())
	}

	assert.Nil(t, s.NextRound())
	assert.Equal(t, 4, s.CurrentRound())

	// Past termination the pointer keeps moving but no media comes back.
	assert.Nil(t, s.NextRound())
	assert.Equal(t, 5, s.CurrentRound())
}

func TestSessionNextRoundBoundedByPlaylist(t *testing.T) {
	// More rounds requested than media available.
	s := NewSession("gs-1", "guild-1", "channel-1", "voice-1", testPlaylist("a", "b"), 5, false)

	assert.NotNil(t, s.NextRound())
	assert.NotNil(t, s.NextRound())
	assert.Nil(t, s.NextRound())
}

func TestSessionNextRoundClearsRoundState(t *testing.T) {
	s := NewSession("gs-1", "guild-1", "channel-1", "voice-1", testPlaylist("a", "b"), 2, false)

	first := s.NextRound()
	s.AddPlayer("u1", "Alice")
	s.AddSkipVote("u1")
	s.MarkAnswerGuessed(first.ID)

	s.NextRound()
	assert.Equal(t, 0, s.GetSkipVotes())
	assert.False(t, s.IsAnswerGuessed(first.ID))
	assert.Equal(t, "a", s.LastPlayedMediaID())
}

func TestSessionIsLastRound(t *testing.T) {
	s := NewSession("gs-1", "guild-1", "channel-1", "voice-1", testPlaylist("a", "b", "c"), 2, false)

	assert.False(t, s.IsLastRound())
	s.NextRound()
	assert.False(t, s.IsLastRound())
	s.NextRound()
	// Bounded by TotalRounds, not playlist length.
	assert.True(t, s.IsLastRound())
}

func TestSessionIsLastRoundShortPlaylist(t *testing.T) {
	s := NewSession("gs-1", "guild-1", "channel-1", "voice-1", testPlaylist("a", "b"), 5, false)

	s.NextRound()
	s.NextRound()
	assert.True(t, s.IsLastRound())
}

func TestSessionAddPlayerIdempotent(t *testing.T) {
	s := NewSession("gs-1", "guild-1", "channel-1", "voice-1", testPlaylist("a"), 1, false)

	s.AddPlayer("u1", "Alice")
	s.AddPlayer("u1", "Impostor")
	assert.Equal(t, 1, s.PlayerCount())

	lb := s.GetLeaderboard()
	assert.Equal(t, "Alice", lb.Entries[0].PlayerName)
}

func TestSessionAddPointExistingPlayersOnly(t *testing.T) {
	s := NewSession("gs-1", "guild-1", "channel-1", "voice-1", testPlaylist("a"), 1, false)

	s.AddPoint("ghost")
	assert.Equal(t, 0, s.Score("ghost"))
	assert.Equal(t, 0, s.PlayerCount())

	s.AddPlayer("u1", "Alice")
	s.AddPoint("u1")
	s.AddPoint("u1")
	assert.Equal(t, 2, s.Score("u1"))
}

func TestSessionLeaderboardStableTies(t *testing.T) {
	s := NewSession("gs-1", "guild-1", "channel-1", "voice-1", testPlaylist("a"), 1, false)

	s.AddPlayer("u1", "Alice")
	s.AddPlayer("u2", "Bob")
	s.AddPlayer("u3", "Carol")
	s.AddPoint("u2")
	s.AddPoint("u2")
	s.AddPoint("u3")

	lb := s.GetLeaderboard()
	ids := []string{lb.Entries[0].PlayerID, lb.Entries[1].PlayerID, lb.Entries[2].PlayerID}
	assert.Equal(t, []string{"u2", "u3", "u1"}, ids)

	// Equal scores keep join order.
	s.AddPoint("u1")
	lb = s.GetLeaderboard()
	ids = []string{lb.Entries[0].PlayerID, lb.Entries[1].PlayerID, lb.Entries[2].PlayerID}
	assert.Equal(t, []string{"u2", "u3", "u1"}, ids)
}

func TestSessionSkipVotesSetSemantics(t *testing.T) {
	s := NewSession("gs-1", "guild-1", "channel-1", "voice-1", testPlaylist("a"), 1, false)

	s.AddSkipVote("u1")
	s.AddSkipVote("u1")
	s.AddSkipVote("u2")
	assert.Equal(t, 2, s.GetSkipVotes())

	s.ResetSkipVotes()
	assert.Equal(t, 0, s.GetSkipVotes())
}

func TestSessionGuessedGuard(t *testing.T) {
	s := NewSession("gs-1", "guild-1", "channel-1", "voice-1", testPlaylist("a"), 1, false)

	assert.False(t, s.IsAnswerGuessed("a"))
	s.MarkAnswerGuessed("a")
	assert.True(t, s.IsAnswerGuessed("a"))
}
