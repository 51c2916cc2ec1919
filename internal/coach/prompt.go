package coach

import (
	"fmt"
	"strings"
)

const (
	affirmationTemplate = "Give me a motivational affirmation and tip for someone who feels %s and wants to %s."
	insightTemplate     = "Provide a short and powerful guide on %s."
)

// AffirmationPrompt builds the mood and goal prompt. Both values are
// lower-cased before substitution.
func AffirmationPrompt(mood Mood, goal Goal) string {
	return fmt.Sprintf(affirmationTemplate, strings.ToLower(string(mood)), strings.ToLower(string(goal)))
}

// InsightPrompt builds the topic prompt. The topic is embedded verbatim.
func InsightPrompt(topic Topic) string {
	return fmt.Sprintf(insightTemplate, topic)
}
