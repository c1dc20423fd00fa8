package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/irierun/irierun-go/internal/dependencies/mocks"
	"github.com/irierun/irierun-go/internal/model"
	"github.com/irierun/irierun-go/internal/storage/memory"
	"github.com/irierun/irierun-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) savePlayer(id model.PlayerID, highScore, totalGames int) {
	err := s.storage.SavePlayer(s.ctx, &model.Player{
		ID:             id,
		Name:           "Test",
		HighScore:      highScore,
		TotalGames:     totalGames,
		UnlockedTracks: []string{model.DefaultTrackName},
		CreatedAt:      s.clock.Now(),
	})
	s.Require().NoError(err)
}

func (s *ServiceSuite) startSession(id string, playerID model.PlayerID) *model.GameSession {
	s.random.QueueString(id)
	session, err := s.service.Start(s.ctx, playerID, "jamaica_country", model.CharacterOnFoot)
	s.Require().NoError(err)
	return session
}

// Start tests

func (s *ServiceSuite) TestStartSucceeds() {
	s.random.QueueString("session00001")

	session, err := s.service.Start(s.ctx, "player-1", "jamaica_country", model.CharacterOnFoot)
	s.Require().NoError(err)

	s.Equal(model.SessionID("session00001"), session.ID)
	s.Equal(model.PlayerID("player-1"), session.PlayerID)
	s.Equal("jamaica_country", session.TrackName)
	s.Equal(model.CharacterOnFoot, session.CharacterType)
	s.False(session.Completed)
	s.Equal(0, session.Score)
	s.Equal(s.clock.Now(), session.CreatedAt)
}

func (s *ServiceSuite) TestStartIsPersisted() {
	session := s.startSession("session00001", "player-1")

	retrieved, err := s.service.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
}

func (s *ServiceSuite) TestStartDoesNotRequireExistingPlayer() {
	s.random.QueueString("session00001")

	_, err := s.service.Start(s.ctx, "ghost-player", "jamaica_country", model.CharacterVehicle)
	s.NoError(err)
}

func (s *ServiceSuite) TestStartRejectsInvalidCharacterType() {
	_, err := s.service.Start(s.ctx, "player-1", "jamaica_country", "hoverboard")
	s.ErrorIs(err, model.ErrInvalidCharacterType)
}

// Update tests

func (s *ServiceSuite) TestUpdateUnknownSessionFails() {
	_, err := s.service.Update(s.ctx, "nonexistent", model.SessionUpdate{})
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ServiceSuite) TestUpdateOverwritesResultFields() {
	s.savePlayer("player-1", 0, 0)
	session := s.startSession("session00001", "player-1")

	updated, err := s.service.Update(s.ctx, session.ID, model.SessionUpdate{
		Score:      1500,
		Distance:   2.5,
		TimePlayed: 120,
		Completed:  true,
	})
	s.Require().NoError(err)

	s.Equal(1500, updated.Score)
	s.Equal(2.5, updated.Distance)
	s.Equal(120, updated.TimePlayed)
	s.True(updated.Completed)
}

func (s *ServiceSuite) TestIncompleteUpdateNeverTouchesPlayer() {
	s.savePlayer("player-1", 100, 3)
	session := s.startSession("session00001", "player-1")

	_, err := s.service.Update(s.ctx, session.ID, model.SessionUpdate{
		Score: 9999, Distance: 1, TimePlayed: 60, Completed: false,
	})
	s.Require().NoError(err)

	player, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(100, player.HighScore)
	s.Equal(3, player.TotalGames)
}

func (s *ServiceSuite) TestCompletedZeroScoreNeverPromotes() {
	s.savePlayer("player-1", 0, 0)
	session := s.startSession("session00001", "player-1")

	_, err := s.service.Update(s.ctx, session.ID, model.SessionUpdate{
		Score: 0, Distance: 1, TimePlayed: 60, Completed: true,
	})
	s.Require().NoError(err)

	player, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(0, player.HighScore)
	s.Equal(0, player.TotalGames)
}

func (s *ServiceSuite) TestEqualScoreNeverPromotes() {
	s.savePlayer("player-1", 500, 2)
	session := s.startSession("session00001", "player-1")

	_, err := s.service.Update(s.ctx, session.ID, model.SessionUpdate{
		Score: 500, Distance: 1, TimePlayed: 60, Completed: true,
	})
	s.Require().NoError(err)

	player, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(500, player.HighScore)
	s.Equal(2, player.TotalGames)
}

func (s *ServiceSuite) TestLowerScoreKeepsHighScore() {
	s.savePlayer("player-1", 500, 2)
	session := s.startSession("session00001", "player-1")

	_, err := s.service.Update(s.ctx, session.ID, model.SessionUpdate{
		Score: 300, Distance: 1, TimePlayed: 60, Completed: true,
	})
	s.Require().NoError(err)

	player, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(500, player.HighScore)
	s.Equal(2, player.TotalGames)
}

func (s *ServiceSuite) TestHigherScorePromotesAndCountsGame() {
	s.savePlayer("player-1", 500, 2)
	session := s.startSession("session00001", "player-1")

	_, err := s.service.Update(s.ctx, session.ID, model.SessionUpdate{
		Score: 1500, Distance: 2.5, TimePlayed: 120, Completed: true,
	})
	s.Require().NoError(err)

	player, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(1500, player.HighScore)
	s.Equal(3, player.TotalGames)
}

func (s *ServiceSuite) TestMissingPlayerIsIgnored() {
	session := s.startSession("session00001", "ghost-player")

	updated, err := s.service.Update(s.ctx, session.ID, model.SessionUpdate{
		Score: 1500, Distance: 2.5, TimePlayed: 120, Completed: true,
	})
	s.Require().NoError(err)
	s.True(updated.Completed)
	s.Equal(1500, updated.Score)
}

func (s *ServiceSuite) TestReapplyingIdenticalUpdateIsIdempotent() {
	s.savePlayer("player-1", 0, 0)
	session := s.startSession("session00001", "player-1")

	update := model.SessionUpdate{Score: 1500, Distance: 2.5, TimePlayed: 120, Completed: true}

	first, err := s.service.Update(s.ctx, session.ID, update)
	s.Require().NoError(err)

	second, err := s.service.Update(s.ctx, session.ID, update)
	s.Require().NoError(err)
	s.Equal(first, second)

	player, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(1500, player.HighScore)
	s.Equal(1, player.TotalGames)
}

func (s *ServiceSuite) TestCompletedSessionCannotPromoteAgain() {
	// Game counting is keyed to the session's first completion; a
	// replayed update with a higher score changes the session doc but
	// not the player.
	s.savePlayer("player-1", 0, 0)
	session := s.startSession("session00001", "player-1")

	_, err := s.service.Update(s.ctx, session.ID, model.SessionUpdate{
		Score: 1500, Distance: 2.5, TimePlayed: 120, Completed: true,
	})
	s.Require().NoError(err)

	_, err = s.service.Update(s.ctx, session.ID, model.SessionUpdate{
		Score: 2000, Distance: 3.0, TimePlayed: 150, Completed: true,
	})
	s.Require().NoError(err)

	player, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(1500, player.HighScore)
	s.Equal(1, player.TotalGames)
}

func (s *ServiceSuite) TestSeparateSessionsEachCountWhenBeatingHighScore() {
	s.savePlayer("player-1", 0, 0)

	first := s.startSession("session00001", "player-1")
	_, err := s.service.Update(s.ctx, first.ID, model.SessionUpdate{
		Score: 1000, Distance: 2.0, TimePlayed: 100, Completed: true,
	})
	s.Require().NoError(err)

	second := s.startSession("session00002", "player-1")
	_, err = s.service.Update(s.ctx, second.ID, model.SessionUpdate{
		Score: 2000, Distance: 3.0, TimePlayed: 150, Completed: true,
	})
	s.Require().NoError(err)

	player, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(2000, player.HighScore)
	s.Equal(2, player.TotalGames)
}
