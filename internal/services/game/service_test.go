package game

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	uuidMocks "github.com/marbeld/tunequiz/internal/common/uuid/mocks"
	"github.com/marbeld/tunequiz/internal/models"
	gsRepo "github.com/marbeld/tunequiz/internal/repositories/gamesession"
	gsMocks "github.com/marbeld/tunequiz/internal/repositories/gamesession/mocks"
	mediaRepo "github.com/marbeld/tunequiz/internal/repositories/media"
	mediaMocks "github.com/marbeld/tunequiz/internal/repositories/media/mocks"
	playerRepo "github.com/marbeld/tunequiz/internal/repositories/player"
	playerMocks "github.com/marbeld/tunequiz/internal/repositories/player/mocks"
	"github.com/marbeld/tunequiz/internal/services/playback"
	playbackMocks "github.com/marbeld/tunequiz/internal/services/playback/mocks"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockMediaRepo  *mediaMocks.MockRepository
	mockGSRepo     *gsMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockPlayback   *playbackMocks.MockService
	mockUUID       *uuidMocks.MockUUID
	fakeClock      *clockwork.FakeClock
	gameService    Service
	ctx            context.Context

	testGuildID   string
	testChannelID string
	testVoiceID   string
	testSessionID string
	testPool      []*models.Media
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMediaRepo = mediaMocks.NewMockRepository(s.mockCtrl)
	s.mockGSRepo = gsMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayback = playbackMocks.NewMockService(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.fakeClock = clockwork.NewFakeClock()
	s.ctx = context.Background()

	s.testGuildID = "guild-123"
	s.testChannelID = "channel-456"
	s.testVoiceID = "voice-789"
	s.testSessionID = "session-abc"

	s.testPool = make([]*models.Media, 6)
	for i := range s.testPool {
		s.testPool[i] = &models.Media{
			ID:       fmt.Sprintf("media-%d", i),
			Title:    fmt.Sprintf("Track %d", i),
			Answers:  []string{fmt.Sprintf("Track %d", i)},
			Duration: 3 * time.Minute,
		}
	}

	svc, err := New(&Config{
		MediaRepo:       s.mockMediaRepo,
		GameSessionRepo: s.mockGSRepo,
		PlayerRepo:      s.mockPlayerRepo,
		Playback:        s.mockPlayback,
		Clock:           s.fakeClock,
		UUID:            s.mockUUID,
		Deterministic:   true,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// createSession is shared setup: a 3-round deterministic game.
func (s *GameServiceTestSuite) createSession() *Session {
	s.mockMediaRepo.EXPECT().
		GetRandomMedia(s.ctx, &mediaRepo.GetRandomMediaInput{Limit: 6}).
		Return(&mediaRepo.GetRandomMediaOutput{Media: s.testPool}, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockGSRepo.EXPECT().
		CreateGameSession(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.gameService.CreateSession(s.ctx, &CreateSessionInput{
		GuildID:        s.testGuildID,
		ChannelID:      s.testChannelID,
		VoiceChannelID: s.testVoiceID,
		Rounds:         3,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Session)
	return out.Session
}

// advance drives AdvanceRound through its fake-clock sleeps. sleeps is
// 1 for the first round, 2 for later rounds, 0 for game over.
func (s *GameServiceTestSuite) advance(input *AdvanceRoundInput, sleeps int) (*AdvanceRoundOutput, error) {
	if sleeps == 0 {
		return s.gameService.AdvanceRound(s.ctx, input)
	}

	type result struct {
		out *AdvanceRoundOutput
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := s.gameService.AdvanceRound(s.ctx, input)
		done <- result{out, err}
	}()

	if sleeps == 2 {
		s.fakeClock.BlockUntil(1)
		s.fakeClock.Advance(DefaultInterRoundDelay)
	}
	s.fakeClock.BlockUntil(1)
	s.fakeClock.Advance(DefaultSettleDelay)

	r := <-done
	return r.out, r.err
}

func (s *GameServiceTestSuite) expectRoundStart(mediaID string) {
	s.mockPlayback.EXPECT().StopPlayback(s.testGuildID)
	s.mockPlayback.EXPECT().
		PlayMedia(s.ctx, gomock.AssignableToTypeOf(&playback.PlayMediaInput{})).
		DoAndReturn(func(_ context.Context, input *playback.PlayMediaInput) error {
			s.Equal(mediaID, input.Media.ID)
			return nil
		})
	s.mockGSRepo.EXPECT().
		UpdateGameSession(s.ctx, gomock.Any()).
		Return(nil)
}

func (s *GameServiceTestSuite) TestNewRequiresConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *GameServiceTestSuite) TestCreateSession() {
	sess := s.createSession()

	s.Equal(s.testSessionID, sess.ID)
	s.Equal(3, sess.TotalRounds)
	s.Len(sess.Playlist, 3)
	// Deterministic mode sorts by media ID before truncating.
	s.Equal("media-0", sess.Playlist[0].ID)
	s.Equal("media-1", sess.Playlist[1].ID)
	s.Equal("media-2", sess.Playlist[2].ID)

	s.Same(sess, s.gameService.GetSession(s.testChannelID))
}

func (s *GameServiceTestSuite) TestCreateSessionRejectsDuplicateChannel() {
	s.createSession()

	_, err := s.gameService.CreateSession(s.ctx, &CreateSessionInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		Rounds:    3,
	})
	s.ErrorIs(err, ErrSessionExists)
}

func (s *GameServiceTestSuite) TestCreateSessionUsesThreadParent() {
	s.mockMediaRepo.EXPECT().
		GetRandomMedia(s.ctx, gomock.Any()).
		Return(&mediaRepo.GetRandomMediaOutput{Media: s.testPool}, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockGSRepo.EXPECT().CreateGameSession(s.ctx, gomock.Any()).Return(nil)

	out, err := s.gameService.CreateSession(s.ctx, &CreateSessionInput{
		GuildID:        s.testGuildID,
		ChannelID:      "thread-999",
		ThreadParentID: s.testChannelID,
		Rounds:         3,
	})
	s.Require().NoError(err)

	s.Equal(s.testChannelID, out.Session.ChannelKey)
	s.Same(out.Session, s.gameService.GetSession(s.testChannelID))
	s.Nil(s.gameService.GetSession("thread-999"))
}

func (s *GameServiceTestSuite) TestCreateSessionShrinksToPool() {
	// 8 rounds requested but only 6 items exist; the fetch is retried
	// before the game shrinks.
	s.mockMediaRepo.EXPECT().
		GetRandomMedia(s.ctx, &mediaRepo.GetRandomMediaInput{Limit: 16}).
		Return(&mediaRepo.GetRandomMediaOutput{Media: s.testPool}, nil).
		Times(DefaultPoolRetries + 1)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockGSRepo.EXPECT().CreateGameSession(s.ctx, gomock.Any()).Return(nil)

	out, err := s.gameService.CreateSession(s.ctx, &CreateSessionInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		Rounds:    8,
	})
	s.Require().NoError(err)

	s.Equal(6, out.Rounds)
	s.Equal(6, out.Session.TotalRounds)
}

func (s *GameServiceTestSuite) TestCreateSessionFailsOnTinyPool() {
	s.mockMediaRepo.EXPECT().
		GetRandomMedia(s.ctx, gomock.Any()).
		Return(&mediaRepo.GetRandomMediaOutput{Media: s.testPool[:3]}, nil).
		Times(DefaultPoolRetries + 1)

	_, err := s.gameService.CreateSession(s.ctx, &CreateSessionInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		Rounds:    4,
	})
	s.ErrorIs(err, ErrInsufficientMedia)

	s.Nil(s.gameService.GetSession(s.testChannelID))
}

func (s *GameServiceTestSuite) TestCreateSessionRejectsZeroRounds() {
	_, err := s.gameService.CreateSession(s.ctx, &CreateSessionInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		Rounds:    0,
	})
	s.ErrorIs(err, ErrInvalidRounds)
}

func (s *GameServiceTestSuite) TestAdvanceRoundStartsFirstRound() {
	s.createSession()
	s.expectRoundStart("media-0")

	out, err := s.advance(&AdvanceRoundInput{ChannelKey: s.testChannelID}, 1)
	s.Require().NoError(err)

	s.True(out.Advanced)
	s.False(out.GameOver)
	s.Equal(1, out.Round)
	s.False(out.LastRound)
	s.Equal("media-0", out.Media.ID)
}

func (s *GameServiceTestSuite) TestAdvanceRoundThroughToGameOver() {
	sess := s.createSession()

	s.expectRoundStart("media-0")
	out, err := s.advance(&AdvanceRoundInput{ChannelKey: s.testChannelID}, 1)
	s.Require().NoError(err)
	s.Equal(1, out.Round)

	s.expectRoundStart("media-1")
	out, err = s.advance(&AdvanceRoundInput{ChannelKey: s.testChannelID}, 2)
	s.Require().NoError(err)
	s.Equal(2, out.Round)

	s.expectRoundStart("media-2")
	out, err = s.advance(&AdvanceRoundInput{ChannelKey: s.testChannelID}, 2)
	s.Require().NoError(err)
	s.Equal(3, out.Round)
	s.True(out.LastRound)

	s.mockGSRepo.EXPECT().
		UpdateGameSession(s.ctx, &gsRepo.UpdateGameSessionInput{
			SessionID: s.testSessionID,
			Round:     4,
			Ended:     true,
		}).
		Return(nil)
	out, err = s.advance(&AdvanceRoundInput{ChannelKey: s.testChannelID}, 0)
	s.Require().NoError(err)
	s.True(out.GameOver)
	s.Nil(out.Media)

	s.Equal("media-2", sess.LastPlayedMediaID())
}

func (s *GameServiceTestSuite) TestAdvanceRoundScoresWinner() {
	sess := s.createSession()
	s.expectRoundStart("media-0")
	_, err := s.advance(&AdvanceRoundInput{ChannelKey: s.testChannelID}, 1)
	s.Require().NoError(err)

	s.expectRoundStart("media-1")
	out, err := s.advance(&AdvanceRoundInput{
		ChannelKey: s.testChannelID,
		WinnerID:   "player-1",
		WinnerName: "Alice",
	}, 2)
	s.Require().NoError(err)

	s.True(out.Advanced)
	s.Equal(1, sess.Score("player-1"))
}

func (s *GameServiceTestSuite) TestAdvanceRoundWinnerNotDoubleScored() {
	sess := s.createSession()
	s.expectRoundStart("media-0")
	_, err := s.advance(&AdvanceRoundInput{ChannelKey: s.testChannelID}, 1)
	s.Require().NoError(err)

	// The guess already resolved the round; the winner in the advance
	// input must not earn a second point.
	sess.AddPlayer("player-1", "Alice")
	s.Require().True(sess.TryResolve("media-0"))
	sess.AddPoint("player-1")

	s.expectRoundStart("media-1")
	_, err = s.advance(&AdvanceRoundInput{
		ChannelKey: s.testChannelID,
		WinnerID:   "player-1",
		WinnerName: "Alice",
	}, 2)
	s.Require().NoError(err)

	s.Equal(1, sess.Score("player-1"))
}

func (s *GameServiceTestSuite) TestAdvanceRoundRejectsConcurrentCall() {
	s.createSession()
	s.expectRoundStart("media-0")

	type result struct {
		out *AdvanceRoundOutput
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := s.gameService.AdvanceRound(s.ctx, &AdvanceRoundInput{ChannelKey: s.testChannelID})
		done <- result{out, err}
	}()

	// First call is parked in its settle sleep; a second advance for
	// the same channel must bounce.
	s.fakeClock.BlockUntil(1)
	out, err := s.gameService.AdvanceRound(s.ctx, &AdvanceRoundInput{ChannelKey: s.testChannelID})
	s.Require().NoError(err)
	s.False(out.Advanced)

	s.fakeClock.Advance(DefaultSettleDelay)
	r := <-done
	s.Require().NoError(r.err)
	s.True(r.out.Advanced)
}

func (s *GameServiceTestSuite) TestAdvanceRoundReportsPlaybackFailure() {
	s.createSession()
	s.mockPlayback.EXPECT().StopPlayback(s.testGuildID)
	s.mockPlayback.EXPECT().
		PlayMedia(s.ctx, gomock.Any()).
		Return(playback.ErrUnplayable)
	s.mockGSRepo.EXPECT().UpdateGameSession(s.ctx, gomock.Any()).Return(nil)

	out, err := s.advance(&AdvanceRoundInput{ChannelKey: s.testChannelID}, 1)
	s.Require().NoError(err)

	s.True(out.Advanced)
	s.True(out.PlaybackFailed)
	s.Equal("media-0", out.Media.ID)
}

func (s *GameServiceTestSuite) TestAdvanceRoundUnknownChannel() {
	_, err := s.gameService.AdvanceRound(s.ctx, &AdvanceRoundInput{ChannelKey: "nope"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *GameServiceTestSuite) startFirstRound() {
	s.createSession()
	s.expectRoundStart("media-0")
	_, err := s.advance(&AdvanceRoundInput{ChannelKey: s.testChannelID}, 1)
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestProcessGuessCorrect() {
	s.startFirstRound()
	s.mockMediaRepo.EXPECT().
		GetMediaAnswers(s.ctx, &mediaRepo.GetMediaAnswersInput{MediaID: "media-0"}).
		Return(&mediaRepo.GetMediaAnswersOutput{Answers: []string{"Track 0"}}, nil)

	out, err := s.gameService.ProcessGuess(s.ctx, &ProcessGuessInput{
		ChannelKey: s.testChannelID,
		PlayerID:   "player-1",
		PlayerName: "Alice",
		Text:       "track 0",
	})
	s.Require().NoError(err)

	s.True(out.Correct)
	s.False(out.AlreadyResolved)
	s.Equal(1, out.Score)
	s.Equal("media-0", out.Media.ID)
}

func (s *GameServiceTestSuite) TestProcessGuessClose() {
	s.startFirstRound()
	s.mockMediaRepo.EXPECT().
		GetMediaAnswers(s.ctx, gomock.Any()).
		Return(&mediaRepo.GetMediaAnswersOutput{Answers: []string{"Bohemian Rhapsody"}}, nil)

	out, err := s.gameService.ProcessGuess(s.ctx, &ProcessGuessInput{
		ChannelKey: s.testChannelID,
		PlayerID:   "player-1",
		PlayerName: "Alice",
		Text:       "bohemia",
	})
	s.Require().NoError(err)

	s.False(out.Correct)
	s.True(out.Close)
	s.Equal(0, out.Score)
}

func (s *GameServiceTestSuite) TestProcessGuessAfterRoundResolved() {
	s.startFirstRound()
	s.mockMediaRepo.EXPECT().
		GetMediaAnswers(s.ctx, gomock.Any()).
		Return(&mediaRepo.GetMediaAnswersOutput{Answers: []string{"Track 0"}}, nil)

	out, err := s.gameService.ProcessGuess(s.ctx, &ProcessGuessInput{
		ChannelKey: s.testChannelID,
		PlayerID:   "player-1",
		PlayerName: "Alice",
		Text:       "track 0",
	})
	s.Require().NoError(err)
	s.True(out.Correct)

	out, err = s.gameService.ProcessGuess(s.ctx, &ProcessGuessInput{
		ChannelKey: s.testChannelID,
		PlayerID:   "player-2",
		PlayerName: "Bob",
		Text:       "track 0",
	})
	s.Require().NoError(err)

	s.False(out.Correct)
	s.True(out.AlreadyResolved)
	s.Equal(0, out.Score)
}

func (s *GameServiceTestSuite) TestProcessGuessRegistersPlayer() {
	s.startFirstRound()
	s.mockMediaRepo.EXPECT().
		GetMediaAnswers(s.ctx, gomock.Any()).
		Return(&mediaRepo.GetMediaAnswersOutput{Answers: []string{"Track 0"}}, nil)

	sess := s.gameService.GetSession(s.testChannelID)
	s.Equal(0, sess.PlayerCount())

	_, err := s.gameService.ProcessGuess(s.ctx, &ProcessGuessInput{
		ChannelKey: s.testChannelID,
		PlayerID:   "player-1",
		PlayerName: "Alice",
		Text:       "wrong answer",
	})
	s.Require().NoError(err)

	s.Equal(1, sess.PlayerCount())
}

func (s *GameServiceTestSuite) TestProcessGuessCorrectClearsSkipVotes() {
	s.startFirstRound()

	out, err := s.gameService.ProcessSkip(s.ctx, &ProcessSkipInput{
		ChannelKey: s.testChannelID,
		PlayerID:   "player-1",
	})
	s.Require().NoError(err)
	s.Require().True(out.Accepted)

	s.mockMediaRepo.EXPECT().
		GetMediaAnswers(s.ctx, gomock.Any()).
		Return(&mediaRepo.GetMediaAnswersOutput{Answers: []string{"Track 0"}}, nil)

	guess, err := s.gameService.ProcessGuess(s.ctx, &ProcessGuessInput{
		ChannelKey: s.testChannelID,
		PlayerID:   "player-2",
		PlayerName: "Bob",
		Text:       "track 0",
	})
	s.Require().NoError(err)
	s.Require().True(guess.Correct)

	// Stale votes must not carry into the next round's quorum.
	sess := s.gameService.GetSession(s.testChannelID)
	s.Equal(0, sess.GetSkipVotes())
}

func (s *GameServiceTestSuite) TestSkipQuorum() {
	s.Equal(2, skipQuorum(0))
	s.Equal(2, skipQuorum(1))
	s.Equal(2, skipQuorum(6))
	s.Equal(3, skipQuorum(7))
	s.Equal(3, skipQuorum(9))
	s.Equal(4, skipQuorum(10))
}

func (s *GameServiceTestSuite) TestProcessSkipBelowQuorum() {
	s.startFirstRound()

	out, err := s.gameService.ProcessSkip(s.ctx, &ProcessSkipInput{
		ChannelKey: s.testChannelID,
		PlayerID:   "player-1",
	})
	s.Require().NoError(err)

	s.True(out.Accepted)
	s.False(out.Skipped)
	s.Equal(1, out.Votes)
	s.Equal(2, out.Required)
}

func (s *GameServiceTestSuite) TestProcessSkipReachesQuorum() {
	s.startFirstRound()

	_, err := s.gameService.ProcessSkip(s.ctx, &ProcessSkipInput{
		ChannelKey: s.testChannelID,
		PlayerID:   "player-1",
	})
	s.Require().NoError(err)

	// Duplicate votes do not count twice.
	out, err := s.gameService.ProcessSkip(s.ctx, &ProcessSkipInput{
		ChannelKey: s.testChannelID,
		PlayerID:   "player-1",
	})
	s.Require().NoError(err)
	s.False(out.Skipped)
	s.Equal(1, out.Votes)

	s.mockPlayback.EXPECT().StopPlayback(s.testGuildID)
	out, err = s.gameService.ProcessSkip(s.ctx, &ProcessSkipInput{
		ChannelKey: s.testChannelID,
		PlayerID:   "player-2",
	})
	s.Require().NoError(err)

	s.True(out.Skipped)
	s.Equal(2, out.Votes)
}

func (s *GameServiceTestSuite) TestProcessSkipRejectedAfterResolution() {
	s.startFirstRound()

	sess := s.gameService.GetSession(s.testChannelID)
	s.Require().True(sess.TryResolve("media-0"))

	out, err := s.gameService.ProcessSkip(s.ctx, &ProcessSkipInput{
		ChannelKey: s.testChannelID,
		PlayerID:   "player-1",
	})
	s.Require().NoError(err)

	s.False(out.Accepted)
}

func (s *GameServiceTestSuite) TestProcessSkipRejectedDuringAdvance() {
	s.createSession()
	s.expectRoundStart("media-0")

	done := make(chan error, 1)
	go func() {
		_, err := s.gameService.AdvanceRound(s.ctx, &AdvanceRoundInput{ChannelKey: s.testChannelID})
		done <- err
	}()

	// The advance is parked in its settle sleep and holds the
	// transition slot; a skip vote must not count or stop playback.
	s.fakeClock.BlockUntil(1)
	out, err := s.gameService.ProcessSkip(s.ctx, &ProcessSkipInput{
		ChannelKey: s.testChannelID,
		PlayerID:   "player-1",
	})
	s.Require().NoError(err)
	s.False(out.Accepted)
	s.Equal(0, out.Votes)

	s.fakeClock.Advance(DefaultSettleDelay)
	s.Require().NoError(<-done)
}

func (s *GameServiceTestSuite) TestAddAnswer() {
	s.startFirstRound()

	s.expectRoundStart("media-1")
	_, err := s.advance(&AdvanceRoundInput{ChannelKey: s.testChannelID}, 2)
	s.Require().NoError(err)

	s.mockMediaRepo.EXPECT().
		AddAnswer(s.ctx, &mediaRepo.AddAnswerInput{MediaID: "media-0", Answer: "The Zeroth Track"}).
		Return(nil)
	s.mockMediaRepo.EXPECT().
		GetMedia(s.ctx, &mediaRepo.GetMediaInput{MediaID: "media-0"}).
		Return(&mediaRepo.GetMediaOutput{Media: s.testPool[0]}, nil)

	out, err := s.gameService.AddAnswer(s.ctx, &AddAnswerInput{
		ChannelKey: s.testChannelID,
		Answer:     "The Zeroth Track",
	})
	s.Require().NoError(err)

	s.Equal("media-0", out.MediaID)
	s.Equal("Track 0", out.Title)
}

func (s *GameServiceTestSuite) TestAddAnswerBeforeFirstRoundEnds() {
	s.startFirstRound()

	_, err := s.gameService.AddAnswer(s.ctx, &AddAnswerInput{
		ChannelKey: s.testChannelID,
		Answer:     "anything",
	})
	s.ErrorIs(err, ErrNoCompletedRound)
}

func (s *GameServiceTestSuite) TestEndSession() {
	sess := s.createSession()
	sess.AddPlayer("player-1", "Alice")
	sess.AddPlayer("player-2", "Bob")
	sess.AddPoint("player-1")

	s.mockPlayback.EXPECT().LeaveChannel(s.testGuildID)
	s.mockGSRepo.EXPECT().
		UpdateGameSession(s.ctx, &gsRepo.UpdateGameSessionInput{
			SessionID: s.testSessionID,
			Round:     0,
			Ended:     true,
		}).
		Return(nil)
	s.mockPlayerRepo.EXPECT().
		UpdateUser(s.ctx, &playerRepo.UpdateUserInput{
			PlayerID:   "player-1",
			PlayerName: "Alice",
			WasCorrect: true,
		}).
		Return(nil)
	s.mockPlayerRepo.EXPECT().
		UpdateUser(s.ctx, &playerRepo.UpdateUserInput{
			PlayerID:   "player-2",
			PlayerName: "Bob",
			WasCorrect: false,
		}).
		Return(nil)

	out, err := s.gameService.EndSession(s.ctx, &EndSessionInput{ChannelKey: s.testChannelID})
	s.Require().NoError(err)

	s.Require().Len(out.Leaderboard.Entries, 2)
	s.Equal("player-1", out.Leaderboard.Entries[0].PlayerID)
	s.Equal(1, out.Leaderboard.Entries[0].Score)
	s.Equal("player-2", out.Leaderboard.Entries[1].PlayerID)

	s.Nil(s.gameService.GetSession(s.testChannelID))
}

func (s *GameServiceTestSuite) TestEndSessionUnknownChannel() {
	_, err := s.gameService.EndSession(s.ctx, &EndSessionInput{ChannelKey: "nope"})
	s.ErrorIs(err, ErrSessionNotFound)
}
