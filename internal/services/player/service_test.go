package player

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

func (s *ServiceSuite) TestCreatePlayerDefaults() {
	s.random.QueueString("player000001")

	created, err := s.service.CreatePlayer(s.ctx, "Test")
	s.Require().NoError(err)

	s.Equal(model.PlayerID("player000001"), created.ID)
	s.Equal("Test", created.Name)
	s.Equal(0, created.HighScore)
	s.Equal(0, created.TotalGames)
	s.Equal([]string{model.DefaultTrackName}, created.UnlockedTracks)
	s.Equal(s.clock.Now(), created.CreatedAt)
}

func (s *ServiceSuite) TestCreatePlayerIsPersisted() {
	s.random.QueueString("player000001")

	created, err := s.service.CreatePlayer(s.ctx, "Test")
	s.Require().NoError(err)

	retrieved, err := s.service.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, retrieved.ID)
}

func (s *ServiceSuite) TestGetPlayerNotFound() {
	_, err := s.service.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) seedScores(scores map[string]int) {
	for id, score := range scores {
		err := s.storage.SavePlayer(s.ctx, &model.Player{
			ID:             model.PlayerID(id),
			Name:           id,
			HighScore:      score,
			UnlockedTracks: []string{model.DefaultTrackName},
			CreatedAt:      s.clock.Now(),
		})
		s.Require().NoError(err)
	}
}

func (s *ServiceSuite) TestLeaderboardOrdersByHighScoreDescending() {
	s.seedScores(map[string]int{"a": 50, "b": 10, "c": 90})

	players, err := s.service.Leaderboard(s.ctx, 10)
	s.Require().NoError(err)

	s.Require().Len(players, 3)
	s.Equal(90, players[0].HighScore)
	s.Equal(50, players[1].HighScore)
	s.Equal(10, players[2].HighScore)
}

func (s *ServiceSuite) TestLeaderboardRespectsLimit() {
	s.seedScores(map[string]int{"a": 50, "b": 10, "c": 90})

	players, err := s.service.Leaderboard(s.ctx, 2)
	s.Require().NoError(err)

	s.Require().Len(players, 2)
	s.Equal(90, players[0].HighScore)
	s.Equal(50, players[1].HighScore)
}

func (s *ServiceSuite) TestLeaderboardDefaultsLimit() {
	for i := 0; i < 15; i++ {
		s.seedScores(map[string]int{string(rune('a' + i)): i * 10})
	}

	players, err := s.service.Leaderboard(s.ctx, 0)
	s.Require().NoError(err)

	s.Len(players, DefaultLeaderboardLimit)
}
