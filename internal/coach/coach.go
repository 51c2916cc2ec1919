package coach

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kalambet/mindset/internal/inference"
)

// Generator produces text for a prompt. *inference.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string) inference.Result
}

// Coach turns selections into prompts and forwards them to a Generator.
// It keeps no state between calls.
type Coach struct {
	gen    Generator
	logger *slog.Logger
}

func New(gen Generator) *Coach {
	return &Coach{gen: gen, logger: slog.Default()}
}

// Boost returns a motivational affirmation and tip for the mood and goal.
func (c *Coach) Boost(ctx context.Context, mood Mood, goal Goal) inference.Result {
	return c.generate(ctx, "boost", AffirmationPrompt(mood, goal))
}

// Insight returns a short guide on the topic.
func (c *Coach) Insight(ctx context.Context, topic Topic) inference.Result {
	return c.generate(ctx, "insight", InsightPrompt(topic))
}

func (c *Coach) generate(ctx context.Context, kind, prompt string) inference.Result {
	id := uuid.New().String()
	start := time.Now()
	c.logger.Debug("generation started", "generation_id", id, "kind", kind, "prompt", prompt)

	res := c.gen.Generate(ctx, prompt)

	attrs := []any{
		"generation_id", id,
		"kind", kind,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if res.Err != nil {
		attrs = append(attrs, "error_kind", res.Err.Kind.String(), "error", res.Err.Error())
		if res.Err.StatusCode != 0 {
			attrs = append(attrs, "status", res.Err.StatusCode)
		}
		c.logger.Warn("generation failed", attrs...)
		return res
	}
	attrs = append(attrs, "placeholder", res.Placeholder, "chars", len(res.Text))
	c.logger.Info("generation finished", attrs...)
	return res
}
