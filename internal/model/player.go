package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// DefaultTrackName is unlocked for every player at creation
const DefaultTrackName = "jamaica_country"

// Player represents a game participant and their lifetime stats
type Player struct {
	ID         PlayerID
	Name       string
	HighScore  int // monotonically non-decreasing
	TotalGames int // completed sessions that beat the high score
	// UnlockedTracks always contains the default starter track
	UnlockedTracks []string
	CreatedAt      time.Time
}
