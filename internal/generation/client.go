package generation

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no generation backend is configured
var ErrUnavailable = errors.New("text generation unavailable")

// Client sends a prompt pair to a text generation backend.
// Implementations must honor context cancellation. Callers make a
// single attempt; any error degrades to fallback dialogue.
type Client interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Unavailable is the null-object Client used when generation is not
// configured. Every call fails with ErrUnavailable.
type Unavailable struct{}

// Ensure Unavailable implements Client
var _ Client = Unavailable{}

// Generate always returns ErrUnavailable
func (Unavailable) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return "", ErrUnavailable
}
