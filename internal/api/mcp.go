package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kalambet/mindset/internal/coach"
	"github.com/kalambet/mindset/internal/inference"
)

const optionsURI = "mindset://options"

// NewMCPServer creates an MCP server exposing the coach as tools.
func NewMCPServer(c Coach, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"mindset",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("Growth mindset coach. Use growth_boost for an affirmation, growth_insight for a short guide and progress_feedback to rate progress."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("growth_boost",
			mcp.WithDescription("Generate a motivational affirmation and tip for a mood and a growth goal."),
			mcp.WithString("mood", mcp.Description("How the user feels today"), mcp.Required(), mcp.Enum(stringsOf(coach.Moods)...)),
			mcp.WithString("goal", mcp.Description("The user's growth goal"), mcp.Required(), mcp.Enum(stringsOf(coach.Goals)...)),
		),
		mcpBoost(c),
	)

	s.AddTool(
		mcp.NewTool("growth_insight",
			mcp.WithDescription("Generate a short and powerful guide on a mindfulness or personal growth topic."),
			mcp.WithString("topic", mcp.Description("Topic to learn about"), mcp.Required(), mcp.Enum(stringsOf(coach.Topics)...)),
		),
		mcpInsight(c),
	)

	s.AddTool(
		mcp.NewTool("progress_feedback",
			mcp.WithDescription("Return the feedback message for a self-rated progress score from 0 to 100."),
			mcp.WithNumber("progress", mcp.Description("Progress rating, 0-100"), mcp.Required()),
		),
		mcpProgress(),
	)

	s.AddResource(
		mcp.NewResource(
			optionsURI,
			"Coaching Options",
			mcp.WithResourceDescription("Valid moods, goals and topics as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceOptions(),
	)

	return s
}

func mcpBoost(c Coach) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rawMood, err := req.RequireString("mood")
		if err != nil {
			return mcpError("mood is required"), nil
		}
		rawGoal, err := req.RequireString("goal")
		if err != nil {
			return mcpError("goal is required"), nil
		}

		mood, err := coach.ParseMood(rawMood)
		if err != nil {
			return mcpError(err.Error()), nil
		}
		goal, err := coach.ParseGoal(rawGoal)
		if err != nil {
			return mcpError(err.Error()), nil
		}

		return mcpGeneration(c.Boost(ctx, mood, goal)), nil
	}
}

func mcpInsight(c Coach) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rawTopic, err := req.RequireString("topic")
		if err != nil {
			return mcpError("topic is required"), nil
		}

		topic, err := coach.ParseTopic(rawTopic)
		if err != nil {
			return mcpError(err.Error()), nil
		}

		return mcpGeneration(c.Insight(ctx, topic)), nil
	}
}

func mcpProgress() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := req.RequireFloat("progress")
		if err != nil {
			return mcpError("progress must be a number between 0 and 100"), nil
		}
		progress, err := coach.ProgressFromNumber(raw)
		if err != nil {
			return mcpError(err.Error()), nil
		}

		b, err := json.Marshal(coach.FeedbackFor(progress))
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal feedback: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpResourceOptions() server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(coach.AllOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal options: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

// mcpGeneration reports inference failures as tool errors carrying the same
// text a user would see on the page.
func mcpGeneration(res inference.Result) *mcp.CallToolResult {
	if !res.OK() {
		return mcpError(res.Display())
	}
	return mcpText(res.Display())
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
