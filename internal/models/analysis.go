package models

// Analysis is the mood label and short summary derived from entry text.
type Analysis struct {
	Mood    string `json:"mood"`
	Summary string `json:"summary"`
}

// MoodVocabulary is the set of labels the model is asked to choose from.
// Membership is not enforced on what the model actually returns.
var MoodVocabulary = []string{
	"happy",
	"sad",
	"excited",
	"anxious",
	"reflective",
	"grateful",
	"frustrated",
	"content",
	"overwhelmed",
	"hopeful",
	"angry",
	"peaceful",
}
