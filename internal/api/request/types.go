package request

// CreatePlayerRequest is the body for POST /api/players
type CreatePlayerRequest struct {
	Name string `json:"name"`
}

// CreateSessionRequest is the body for POST /api/game-sessions
type CreateSessionRequest struct {
	PlayerID      string `json:"player_id"`
	TrackName     string `json:"track_name"`
	CharacterType string `json:"character_type"`
}

// UpdateSessionRequest is the body for PUT /api/game-sessions/{id}
type UpdateSessionRequest struct {
	Score      int     `json:"score"`
	Distance   float64 `json:"distance"`
	TimePlayed int     `json:"time_played"`
	Completed  bool    `json:"completed"`
}

// DialogueRequest is the body for POST /api/dialogue
type DialogueRequest struct {
	Context    string `json:"context"`
	TrackName  string `json:"track_name"`
	PlayerName string `json:"player_name"`
}
