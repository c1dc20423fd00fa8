package track

import "github.com/irierun/irierun-go/internal/model"

// Service serves the static track catalog.
// Tracks are fixed game content; nothing here touches storage.
type Service struct {
	tracks []model.Track
}

// New creates a track service with the fixed catalog
func New() *Service {
	return &Service{tracks: catalog()}
}

func catalog() []model.Track {
	return []model.Track{
		{
			ID:                "track_001",
			Name:              model.DefaultTrackName,
			DisplayName:       "Blue Mountain Trail",
			LocationType:      "country",
			CharacterType:     model.CharacterOnFoot,
			Difficulty:        "easy",
			BackgroundTheme:   "rural_mountains",
			UnlockRequirement: 0,
			IsUnlocked:        true,
		},
		{
			ID:                "track_002",
			Name:              "kingston_city",
			DisplayName:       "Kingston Street Race",
			LocationType:      "city",
			CharacterType:     model.CharacterVehicle,
			Difficulty:        "medium",
			BackgroundTheme:   "urban_streets",
			UnlockRequirement: 1000,
			IsUnlocked:        false,
		},
	}
}

// List returns all tracks in catalog order
func (s *Service) List() []model.Track {
	result := make([]model.Track, len(s.tracks))
	copy(result, s.tracks)
	return result
}

// Get returns the track with the given name
func (s *Service) Get(name string) (model.Track, bool) {
	for _, t := range s.tracks {
		if t.Name == name {
			return t, true
		}
	}
	return model.Track{}, false
}
