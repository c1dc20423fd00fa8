package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/irierun/irierun-go/internal/model"
	"github.com/irierun/irierun-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players   map[model.PlayerID]*model.Player
	sessions  map[model.SessionID]*model.GameSession
	dialogues []*model.DialogueEntry
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:  make(map[model.PlayerID]*model.Player),
		sessions: make(map[model.SessionID]*model.GameSession),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) TopPlayers(ctx context.Context, limit int) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		return []*model.Player{}, nil
	}

	ranked := make([]*model.Player, 0, len(s.players))
	for _, player := range s.players {
		ranked = append(ranked, player)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].HighScore != ranked[j].HighScore {
			return ranked[i].HighScore > ranked[j].HighScore
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

// Dialogue operations

func (s *Storage) SaveDialogue(ctx context.Context, entry *model.DialogueEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogues = append(s.dialogues, entry)
	return nil
}

// Dialogues returns the persisted dialogue log (for tests)
func (s *Storage) Dialogues() []*model.DialogueEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.DialogueEntry, len(s.dialogues))
	copy(result, s.dialogues)
	return result
}
