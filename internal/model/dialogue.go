package model

import "time"

// DialogueID uniquely identifies a dialogue entry
type DialogueID string

// DialogueContext classifies the game moment dialogue is requested for.
// The resolver tolerates contexts outside this set.
type DialogueContext string

const (
	ContextStart   DialogueContext = "start"
	ContextVictory DialogueContext = "victory"
	ContextDefeat  DialogueContext = "defeat"
	ContextPowerup DialogueContext = "powerup"
)

// DialogueEntry is an append-only record of a resolved dialogue line.
// Entries are written for auditing and never read back by the game.
type DialogueEntry struct {
	ID          DialogueID
	Context     DialogueContext
	Patois      string
	Translation string
	TrackName   string
	CreatedAt   time.Time
}
