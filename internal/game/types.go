package game

const (
	DefaultTitle      = "Untitled Game"
	OutcomeSentinel   = "[Outcome unavailable]"
	IntroMaxTokens    = 300
	OutcomesMaxTokens = 350
	NextMaxTokens     = 320
)

// GameParameters are the short user-supplied inputs for an opening scene.
type GameParameters struct {
	Title         string `json:"gameTitle"`
	Genre         string `json:"genre"`
	Setting       string `json:"setting"`
	Tone          string `json:"tone"`
	MainCharacter string `json:"mainCharacter"`
	Goal          string `json:"goal"`
}

// NextSceneInput is the prior context a follow-up scene continues from.
type NextSceneInput struct {
	ParentText  string `json:"parentText"`
	ChoiceText  string `json:"choiceText"`
	OutcomeText string `json:"outcomeText"`
}
