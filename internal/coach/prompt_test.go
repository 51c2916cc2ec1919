package coach

import (
	"strings"
	"testing"
)

func TestAffirmationPrompt_AllPairs(t *testing.T) {
	for _, m := range Moods {
		for _, g := range Goals {
			p := AffirmationPrompt(m, g)
			if !strings.Contains(p, "feels "+strings.ToLower(string(m))+" ") {
				t.Errorf("prompt %q missing lower-cased mood %q", p, m)
			}
			if !strings.Contains(p, "wants to "+strings.ToLower(string(g))+".") {
				t.Errorf("prompt %q missing lower-cased goal %q", p, g)
			}
			if !strings.HasPrefix(p, "Give me a motivational affirmation and tip for someone who feels ") {
				t.Errorf("prompt %q does not follow template", p)
			}
		}
	}
}

func TestAffirmationPrompt_Exact(t *testing.T) {
	got := AffirmationPrompt(Down, DevelopSelfDiscipline)
	want := "Give me a motivational affirmation and tip for someone who feels down and wants to develop self-discipline."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInsightPrompt_AllTopics(t *testing.T) {
	for _, topic := range Topics {
		got := InsightPrompt(topic)
		want := "Provide a short and powerful guide on " + string(topic) + "."
		if got != want {
			t.Errorf("InsightPrompt(%q) = %q, want %q", topic, got, want)
		}
	}
}
