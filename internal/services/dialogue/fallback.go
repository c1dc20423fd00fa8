package dialogue

import "github.com/irierun/irierun-go/internal/model"

// pair is a static patois/translation tuple
type pair struct {
	patois      string
	translation string
}

// fallbackPhrases covers the known dialogue contexts when generation
// is unavailable or fails
var fallbackPhrases = map[model.DialogueContext]pair{
	model.ContextVictory: {
		patois:      "Big up yuhself! Yuh run like lightning!",
		translation: "Congratulations! You ran like lightning!",
	},
	model.ContextDefeat: {
		patois:      "Nuh worry, bredrin. Try again!",
		translation: "Don't worry, friend. Try again!",
	},
	model.ContextStart: {
		patois:      "Ready fi run through Jamaica, General?",
		translation: "Ready to run through Jamaica, General?",
	},
	model.ContextPowerup: {
		patois:      "Bless up! Power boost time!",
		translation: "Blessed up! Power boost time!",
	},
}

// genericFallback is used for contexts outside the known set
var genericFallback = pair{
	patois:      "Irie vibes, bredrin!",
	translation: "Good vibes, friend!",
}

// fallbackFor returns the static pair for a context, generic if unknown
func fallbackFor(context model.DialogueContext) pair {
	if p, ok := fallbackPhrases[context]; ok {
		return p
	}
	return genericFallback
}
