package gamesession

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/marbeld/tunequiz/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetGameSession() {
	session := &models.GameSession{
		ID:        "gs-1",
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		Rounds:    10,
		CreatedAt: time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC),
	}

	err := s.repo.CreateGameSession(s.ctx, &CreateGameSessionInput{Session: session})
	s.Require().NoError(err)

	out, err := s.repo.GetGameSession(s.ctx, &GetGameSessionInput{SessionID: "gs-1"})
	s.Require().NoError(err)
	s.Equal("guild-1", out.Session.GuildID)
	s.Equal(10, out.Session.Rounds)
	s.False(out.Session.Ended)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameSession() {
	session := &models.GameSession{
		ID:        "gs-1",
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		Rounds:    5,
	}
	s.Require().NoError(s.repo.CreateGameSession(s.ctx, &CreateGameSessionInput{Session: session}))

	err := s.repo.UpdateGameSession(s.ctx, &UpdateGameSessionInput{
		SessionID: "gs-1",
		Round:     3,
	})
	s.Require().NoError(err)

	out, err := s.repo.GetGameSession(s.ctx, &GetGameSessionInput{SessionID: "gs-1"})
	s.Require().NoError(err)
	s.Equal(3, out.Session.CurrentRound)
	s.False(out.Session.Ended)

	err = s.repo.UpdateGameSession(s.ctx, &UpdateGameSessionInput{
		SessionID: "gs-1",
		Round:     5,
		Ended:     true,
	})
	s.Require().NoError(err)

	out, err = s.repo.GetGameSession(s.ctx, &GetGameSessionInput{SessionID: "gs-1"})
	s.Require().NoError(err)
	s.Equal(5, out.Session.CurrentRound)
	s.True(out.Session.Ended)
}

func (s *RedisRepositoryTestSuite) TestGetGameSessionNotFound() {
	_, err := s.repo.GetGameSession(s.ctx, &GetGameSessionInput{SessionID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateGameSessionNotFound() {
	err := s.repo.UpdateGameSession(s.ctx, &UpdateGameSessionInput{
		SessionID: "missing",
		Round:     1,
	})
	s.ErrorIs(err, ErrSessionNotFound)
}
