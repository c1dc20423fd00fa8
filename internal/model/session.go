package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// CharacterType is the mode a session is played in
type CharacterType string

const (
	CharacterOnFoot  CharacterType = "on_foot"
	CharacterVehicle CharacterType = "vehicle"
)

// Valid reports whether the character type is one of the known modes
func (c CharacterType) Valid() bool {
	return c == CharacterOnFoot || c == CharacterVehicle
}

// GameSession represents a single play attempt on a track
type GameSession struct {
	ID            SessionID
	PlayerID      PlayerID
	TrackName     string
	Score         int
	Distance      float64
	TimePlayed    int // seconds
	CharacterType CharacterType
	Completed     bool
	CreatedAt     time.Time
}

// SessionUpdate is the payload applied to a session when a run ends.
// It fully replaces the four mutable fields of the session.
type SessionUpdate struct {
	Score      int
	Distance   float64
	TimePlayed int
	Completed  bool
}
