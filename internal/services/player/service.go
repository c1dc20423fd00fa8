package player

import (
	"context"
	"log/slog"

	"github.com/irierun/irierun-go/internal/dependencies/clock"
	"github.com/irierun/irierun-go/internal/dependencies/random"
	"github.com/irierun/irierun-go/internal/model"
	"github.com/irierun/irierun-go/internal/storage"
)

const (
	idLength   = 12
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// DefaultLeaderboardLimit is used when no limit is requested
const DefaultLeaderboardLimit = 10

// Service manages player profiles and the leaderboard
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new player service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreatePlayer creates a player with zero stats and the starter track unlocked
func (s *Service) CreatePlayer(ctx context.Context, name string) (*model.Player, error) {
	player := &model.Player{
		ID:             model.PlayerID(s.random.String(idLength, idAlphabet)),
		Name:           name,
		HighScore:      0,
		TotalGames:     0,
		UnlockedTracks: []string{model.DefaultTrackName},
		CreatedAt:      s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		s.logger.Error("failed to save player",
			slog.String("player_id", string(player.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("player created",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name),
	)

	return player, nil
}

// GetPlayer retrieves a player by ID
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// Leaderboard returns up to limit players ordered by high score descending
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]*model.Player, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	return s.storage.TopPlayers(ctx, limit)
}
