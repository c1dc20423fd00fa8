package redis

import (
	"fmt"

	"github.com/irierun/irierun-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "irierun"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// leaderboardKey returns the Redis key for the high score sorted set
func leaderboardKey() string {
	return fmt.Sprintf("%s:idx:leaderboard", keyPrefix)
}

// sessionKey returns the Redis key for a GameSession
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// dialogueKey returns the Redis key for a DialogueEntry
func dialogueKey(id model.DialogueID) string {
	return fmt.Sprintf("%s:dialogue:%s", keyPrefix, id)
}

// dialogueLogKey returns the Redis key for the append-only dialogue log
func dialogueLogKey() string {
	return fmt.Sprintf("%s:idx:dialogue_log", keyPrefix)
}
