package coach

import (
	"context"
	"errors"
	"testing"

	"github.com/kalambet/mindset/internal/inference"
)

type mockGenerator struct {
	prompts []string
	result  inference.Result
}

func (m *mockGenerator) Generate(_ context.Context, prompt string) inference.Result {
	m.prompts = append(m.prompts, prompt)
	return m.result
}

func TestBoost_SendsAffirmationPrompt(t *testing.T) {
	gen := &mockGenerator{result: inference.Result{Text: "You got this."}}
	c := New(gen)

	res := c.Boost(context.Background(), Neutral, EnhanceFocus)
	if res.Display() != "You got this." {
		t.Errorf("Display() = %q", res.Display())
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(gen.prompts))
	}
	want := "Give me a motivational affirmation and tip for someone who feels neutral and wants to enhance focus."
	if gen.prompts[0] != want {
		t.Errorf("prompt = %q, want %q", gen.prompts[0], want)
	}
}

func TestInsight_SendsTopicPrompt(t *testing.T) {
	gen := &mockGenerator{result: inference.Result{Text: "Breathe."}}
	c := New(gen)

	c.Insight(context.Background(), MorningRoutines)
	if len(gen.prompts) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(gen.prompts))
	}
	if gen.prompts[0] != "Provide a short and powerful guide on Morning Routines for Success." {
		t.Errorf("prompt = %q", gen.prompts[0])
	}
}

func TestBoost_PassesFailureThrough(t *testing.T) {
	gen := &mockGenerator{result: inference.Result{Err: &inference.Error{
		Kind:       inference.KindStatus,
		StatusCode: 500,
		Err:        errors.New("unexpected status 500: boom"),
	}}}
	c := New(gen)

	res := c.Boost(context.Background(), Down, StayConsistent)
	if res.OK() {
		t.Fatal("expected failure result")
	}
	if res.Display() != inference.ErrorPrefix+"unexpected status 500: boom" {
		t.Errorf("Display() = %q", res.Display())
	}
}

func TestCoach_NoCaching(t *testing.T) {
	gen := &mockGenerator{result: inference.Result{Text: "x"}}
	c := New(gen)

	c.Insight(context.Background(), HabitsForSuccess)
	c.Insight(context.Background(), HabitsForSuccess)
	if len(gen.prompts) != 2 {
		t.Errorf("expected 2 calls for identical input, got %d", len(gen.prompts))
	}
}
