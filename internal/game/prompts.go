package game

import (
	"fmt"
	"strings"

	"github.com/kiliankoe/storybranch/internal/ai"
)

const introSystem = `You write the opening scene of a branching text adventure.
Write 3-6 sentences. Be vivid but compact.
Use present tense and address the player in the second person ("you").
Do not include choices, options, or numbered lists.`

const outcomesSystem = `You write outcome hooks for a branching text adventure.
For each choice, write exactly one concise sentence describing its immediate outcome.
Each outcome should work as a hook for the next scene without spoiling what follows.
Keep the outcomes in the same order as the choices, one per line, without numbering.
Do not invent new choices.`

const narrativeSystem = `You continue a branching text adventure.
Write the next scene in 3-6 sentences, continuing from the previous scene, the chosen option, and its immediate outcome.
Use present tense and address the player in the second person ("you").
Do not include choices, options, or numbered lists.`

// BuildIntroPrompt renders every field verbatim; empty stays empty.
func BuildIntroPrompt(p GameParameters) []ai.Message {
	user := fmt.Sprintf("Title: %s\nGenre: %s\nSetting: %s\nTone: %s\nMain character: %s\nGoal: %s",
		p.Title, p.Genre, p.Setting, p.Tone, p.MainCharacter, p.Goal)
	return ai.PromptPair(introSystem, user)
}

func BuildOutcomesPrompt(scene string, choices []string) []ai.Message {
	var b strings.Builder
	b.WriteString("Scene:\n")
	b.WriteString(scene)
	b.WriteString("\n\nChoices:\n")
	for _, c := range choices {
		b.WriteString("- ")
		b.WriteString(c)
		b.WriteString("\n")
	}
	return ai.PromptPair(outcomesSystem, strings.TrimRight(b.String(), "\n"))
}

func BuildNarrativePrompt(in NextSceneInput) []ai.Message {
	user := fmt.Sprintf("Previous scene:\n%s\n\nChosen option:\n%s\n\nOutcome:\n%s",
		in.ParentText, in.ChoiceText, in.OutcomeText)
	return ai.PromptPair(narrativeSystem, user)
}
