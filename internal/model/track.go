package model

// Track is a static descriptive record of a racing course.
// Tracks are served from a fixed catalog and never persisted.
type Track struct {
	ID                string
	Name              string
	DisplayName       string
	LocationType      string // "country", "city", "town"
	CharacterType     CharacterType
	Difficulty        string // "easy", "medium", "hard"
	BackgroundTheme   string
	UnlockRequirement int // score needed to unlock
	IsUnlocked        bool
}
