package response

import (
	"time"

	"github.com/irierun/irierun-go/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	HighScore      int       `json:"high_score"`
	TotalGames     int       `json:"total_games"`
	UnlockedTracks []string  `json:"unlocked_tracks"`
	CreatedAt      time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:             string(p.ID),
		Name:           p.Name,
		HighScore:      p.HighScore,
		TotalGames:     p.TotalGames,
		UnlockedTracks: p.UnlockedTracks,
		CreatedAt:      p.CreatedAt,
	}
}

// PlayersFromModels converts a leaderboard slice
func PlayersFromModels(players []*model.Player) []Player {
	result := make([]Player, len(players))
	for i, p := range players {
		result[i] = PlayerFromModel(p)
	}
	return result
}

// GameSession represents a session in API responses
type GameSession struct {
	ID            string    `json:"id"`
	PlayerID      string    `json:"player_id"`
	TrackName     string    `json:"track_name"`
	Score         int       `json:"score"`
	Distance      float64   `json:"distance"`
	TimePlayed    int       `json:"time_played"`
	CharacterType string    `json:"character_type"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"created_at"`
}

// SessionFromModel converts a model.GameSession to a response GameSession
func SessionFromModel(s *model.GameSession) GameSession {
	return GameSession{
		ID:            string(s.ID),
		PlayerID:      string(s.PlayerID),
		TrackName:     s.TrackName,
		Score:         s.Score,
		Distance:      s.Distance,
		TimePlayed:    s.TimePlayed,
		CharacterType: string(s.CharacterType),
		Completed:     s.Completed,
		CreatedAt:     s.CreatedAt,
	}
}

// Track represents a track in API responses
type Track struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	DisplayName       string `json:"display_name"`
	LocationType      string `json:"location_type"`
	CharacterType     string `json:"character_type"`
	Difficulty        string `json:"difficulty"`
	BackgroundTheme   string `json:"background_theme"`
	UnlockRequirement int    `json:"unlock_requirement"`
	IsUnlocked        bool   `json:"is_unlocked"`
}

// TrackFromModel converts a model.Track to a response Track
func TrackFromModel(t model.Track) Track {
	return Track{
		ID:                t.ID,
		Name:              t.Name,
		DisplayName:       t.DisplayName,
		LocationType:      t.LocationType,
		CharacterType:     string(t.CharacterType),
		Difficulty:        t.Difficulty,
		BackgroundTheme:   t.BackgroundTheme,
		UnlockRequirement: t.UnlockRequirement,
		IsUnlocked:        t.IsUnlocked,
	}
}

// TracksFromModels converts the track catalog
func TracksFromModels(tracks []model.Track) []Track {
	result := make([]Track, len(tracks))
	for i, t := range tracks {
		result[i] = TrackFromModel(t)
	}
	return result
}

// Dialogue represents a resolved dialogue entry in API responses
type Dialogue struct {
	ID          string    `json:"id"`
	Context     string    `json:"context"`
	Dialogue    string    `json:"dialogue"`
	Translation string    `json:"translation"`
	TrackName   string    `json:"track_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// DialogueFromModel converts a model.DialogueEntry to a response Dialogue
func DialogueFromModel(d *model.DialogueEntry) Dialogue {
	return Dialogue{
		ID:          string(d.ID),
		Context:     string(d.Context),
		Dialogue:    d.Patois,
		Translation: d.Translation,
		TrackName:   d.TrackName,
		CreatedAt:   d.CreatedAt,
	}
}

// Status is the liveness response for GET /api/
type Status struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
