package dialogue

import (
	"fmt"

	"github.com/irierun/irierun-go/internal/model"
)

const systemPrompt = `You are a Jamaican cultural expert who creates authentic patois dialogue for a racing game.
Create realistic Jamaican patois expressions that are respectful and culturally accurate.
Always provide both the patois version and an English translation.
The main character is 'General Da Jamaican Boy' - a heroic figure representing Jamaican culture and spirit.`

// sceneDescriptions maps known track names to human-readable scenes
// embedded in the generation prompt
var sceneDescriptions = map[string]string{
	"jamaica_country": "rural Jamaica with beautiful Blue Mountains, sugar cane fields, and traditional villages",
	"kingston_city":   "bustling Kingston with vibrant street culture, markets, and urban energy",
	"montego_bay":     "tourist area with beaches, resorts, and tropical vibes",
}

const genericScene = "beautiful Jamaica"

// userPrompt builds the generation request for a dialogue moment
func userPrompt(context model.DialogueContext, trackName, playerName string) string {
	scene, ok := sceneDescriptions[trackName]
	if !ok {
		scene = genericScene
	}

	return fmt.Sprintf(`Generate a short Jamaican patois phrase for a racing game.

Context: %s
Location: %s - %s
Character: %s

Requirements:
- Keep it authentic but family-friendly
- Make it energetic and encouraging for a racing game
- Include cultural pride and positivity
- 1-2 sentences maximum

Please respond in this exact format:
PATOIS: [authentic patois phrase]
TRANSLATION: [English translation]`, context, trackName, scene, playerName)
}
