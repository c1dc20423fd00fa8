package dialogue

import (
	"context"
	"errors"
	"log/slog"

	"github.com/irierun/irierun-go/internal/dependencies/clock"
	"github.com/irierun/irierun-go/internal/dependencies/random"
	"github.com/irierun/irierun-go/internal/generation"
	"github.com/irierun/irierun-go/internal/model"
	"github.com/irierun/irierun-go/internal/storage"
)

const (
	idLength   = 12
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// DefaultPlayerName is used when a dialogue request names no player
const DefaultPlayerName = "General Da Jamaican Boy"

// Per-field defaults when the generation reply omits a prefix
const (
	defaultPatois      = "Run fast, mi bredrin!"
	defaultTranslation = "Run fast, my friend!"
)

// Service resolves dialogue lines from the generation backend, falling
// back to static phrases. Resolve never fails outward.
type Service struct {
	storage storage.Storage
	gen     generation.Client
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new dialogue service
func New(storage storage.Storage, gen generation.Client, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		gen:     gen,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Resolve produces a patois/translation pair for a game moment and
// records it in the dialogue log
func (s *Service) Resolve(ctx context.Context, dialogueContext model.DialogueContext, trackName, playerName string) *model.DialogueEntry {
	if playerName == "" {
		playerName = DefaultPlayerName
	}

	patois, translation := s.resolve(ctx, dialogueContext, trackName, playerName)

	entry := &model.DialogueEntry{
		ID:          model.DialogueID(s.random.String(idLength, idAlphabet)),
		Context:     dialogueContext,
		Patois:      patois,
		Translation: translation,
		TrackName:   trackName,
		CreatedAt:   s.clock.Now(),
	}

	// The log is an audit trail; the resolved line still goes out if
	// the write fails
	if err := s.storage.SaveDialogue(ctx, entry); err != nil {
		s.logger.Error("failed to save dialogue entry",
			slog.String("dialogue_id", string(entry.ID)),
			slog.String("error", err.Error()),
		)
	}

	return entry
}

// resolve makes a single generation attempt and degrades to the static
// fallback table on any failure
func (s *Service) resolve(ctx context.Context, dialogueContext model.DialogueContext, trackName, playerName string) (string, string) {
	raw, err := s.gen.Generate(ctx, systemPrompt, userPrompt(dialogueContext, trackName, playerName))
	if err != nil {
		if !errors.Is(err, generation.ErrUnavailable) {
			s.logger.Warn("dialogue generation failed",
				slog.String("context", string(dialogueContext)),
				slog.String("error", err.Error()),
			)
		}
		p := fallbackFor(dialogueContext)
		return p.patois, p.translation
	}

	reply := parseReply(raw)
	if reply.Patois == "" {
		reply.Patois = defaultPatois
	}
	if reply.Translation == "" {
		reply.Translation = defaultTranslation
	}
	return reply.Patois, reply.Translation
}
