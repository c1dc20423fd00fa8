package session

import (
	"context"
	"errors"
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

// Service manages game sessions and score reconciliation
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new session service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Start creates a new session for a play attempt. The player ID is not
// checked for existence; sessions reference players by convention only.
func (s *Service) Start(ctx context.Context, playerID model.PlayerID, trackName string, characterType model.CharacterType) (*model.GameSession, error) {
	if !characterType.Valid() {
		return nil, model.ErrInvalidCharacterType
	}

	session := &model.GameSession{
		ID:            model.SessionID(s.random.String(idLength, idAlphabet)),
		PlayerID:      playerID,
		TrackName:     trackName,
		CharacterType: characterType,
		Completed:     false,
		CreatedAt:     s.clock.Now(),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		s.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("session started",
		slog.String("session_id", string(session.ID)),
		slog.String("player_id", string(playerID)),
		slog.String("track", trackName),
	)

	return session, nil
}

// GetSession retrieves a session by ID
func (s *Service) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	return s.storage.GetSession(ctx, id)
}

// Update overwrites the session's result fields and reconciles the
// owning player's stats. High score promotion and the total games
// increment happen only when the session transitions to completed for
// the first time, so re-applying an update is idempotent.
func (s *Service) Update(ctx context.Context, id model.SessionID, update model.SessionUpdate) (*model.GameSession, error) {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	wasCompleted := session.Completed

	session.Score = update.Score
	session.Distance = update.Distance
	session.TimePlayed = update.TimePlayed
	session.Completed = update.Completed

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	if update.Completed && !wasCompleted && update.Score > 0 {
		if err := s.promote(ctx, session.PlayerID, update.Score); err != nil {
			return nil, err
		}
	}

	return s.storage.GetSession(ctx, id)
}

// promote raises the player's high score and game count when the
// completed score beats their stored best. A missing player is not an
// error; the session update stands on its own.
func (s *Service) promote(ctx context.Context, playerID model.PlayerID, score int) error {
	player, err := s.storage.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			s.logger.Warn("score promotion skipped, player missing",
				slog.String("player_id", string(playerID)),
			)
			return nil
		}
		return err
	}

	// Strictly greater; an equal score never promotes
	if score <= player.HighScore {
		return nil
	}

	player.HighScore = score
	player.TotalGames++

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return err
	}

	s.logger.Info("high score promoted",
		slog.String("player_id", string(playerID)),
		slog.Int("high_score", score),
		slog.Int("total_games", player.TotalGames),
	)

	return nil
}
