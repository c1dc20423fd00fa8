package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printLeaderboard(v)
	case Session:
		o.printSession(v)
	case []Track:
		o.printTracks(v)
	case Dialogue:
		o.printDialogue(v)
	case StatusResult:
		o.printStatus(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	HighScore      int       `json:"high_score"`
	TotalGames     int       `json:"total_games"`
	UnlockedTracks []string  `json:"unlocked_tracks"`
	CreatedAt      time.Time `json:"created_at"`
}

// Session response type
type Session struct {
	ID            string  `json:"id"`
	PlayerID      string  `json:"player_id"`
	TrackName     string  `json:"track_name"`
	Score         int     `json:"score"`
	Distance      float64 `json:"distance"`
	TimePlayed    int     `json:"time_played"`
	CharacterType string  `json:"character_type"`
	Completed     bool    `json:"completed"`
}

// Track response type
type Track struct {
	Name              string `json:"name"`
	DisplayName       string `json:"display_name"`
	LocationType      string `json:"location_type"`
	CharacterType     string `json:"character_type"`
	Difficulty        string `json:"difficulty"`
	UnlockRequirement int    `json:"unlock_requirement"`
	IsUnlocked        bool   `json:"is_unlocked"`
}

// Dialogue response type
type Dialogue struct {
	Context     string `json:"context"`
	Dialogue    string `json:"dialogue"`
	Translation string `json:"translation"`
	TrackName   string `json:"track_name"`
}

// StatusResult response type
type StatusResult struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("High Score: %d\n", p.HighScore)
	fmt.Printf("Total Games: %d\n", p.TotalGames)
	fmt.Printf("Unlocked Tracks: %s\n", strings.Join(p.UnlockedTracks, ", "))
}

func (o *Output) printLeaderboard(players []Player) {
	fmt.Printf("Leaderboard (%d):\n", len(players))
	for i, p := range players {
		fmt.Printf("%3d. %-20s %d\n", i+1, p.Name, p.HighScore)
	}
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("Player: %s\n", s.PlayerID)
	fmt.Printf("Track: %s (%s)\n", s.TrackName, s.CharacterType)
	if s.Completed {
		fmt.Printf("Score: %d, Distance: %.1f, Time: %ds\n", s.Score, s.Distance, s.TimePlayed)
	} else {
		fmt.Println("In progress")
	}
}

func (o *Output) printTracks(tracks []Track) {
	fmt.Printf("Tracks (%d):\n", len(tracks))
	for _, t := range tracks {
		lockStr := ""
		if !t.IsUnlocked {
			lockStr = fmt.Sprintf(" [locked, needs %d]", t.UnlockRequirement)
		}
		fmt.Printf("  %s (%s, %s, %s)%s\n", t.DisplayName, t.Name, t.CharacterType, t.Difficulty, lockStr)
	}
}

func (o *Output) printDialogue(d Dialogue) {
	fmt.Printf("%s\n", d.Dialogue)
	fmt.Printf("(%s)\n", d.Translation)
}

func (o *Output) printStatus(s StatusResult) {
	fmt.Printf("%s: %s\n", s.Message, s.Status)
}
