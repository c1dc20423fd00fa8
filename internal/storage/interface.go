package storage

import (
	"context"

	"github.com/irierun/irierun-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	// TopPlayers returns up to limit players ordered by high score descending
	TopPlayers(ctx context.Context, limit int) ([]*model.Player, error)

	// Session operations
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error)

	// Dialogue operations (append-only audit log, never read back)
	SaveDialogue(ctx context.Context, entry *model.DialogueEntry) error
}
