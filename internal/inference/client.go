package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	DefaultURL         = "https://api-inference.huggingface.co/models/gpt2"
	DefaultMaxLength   = 100
	DefaultTemperature = 0.8

	// NoResponseText is returned when the API succeeds without generated text.
	NoResponseText = "⚠️ No meaningful response from API."
	// ErrorPrefix marks every displayed failure.
	ErrorPrefix = "⚠️ API Error: "

	maxResponseSize  = 1 << 20 // 1MB
	maxErrorBodySize = 1 << 10
)

// Client calls a Hugging Face text-generation endpoint. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the default GPT-2 endpoint.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		url:    DefaultURL,
		// No timeout: a call is bounded only by the caller's context.
		httpClient: &http.Client{},
	}
}

// NewClientWithURL creates a client pointing at a custom endpoint URL.
func NewClientWithURL(apiKey, url string) *Client {
	c := NewClient(apiKey)
	if url != "" {
		c.url = strings.TrimRight(url, "/")
	}
	return c
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string { return c.url }

// Generate sends prompt to the endpoint once and returns the generated text.
// Every failure is reported through Result.Err; Generate never returns a Go
// error and never retries.
func (c *Client) Generate(ctx context.Context, prompt string) Result {
	if prompt == "" {
		return failed(KindInvalid, "prompt must not be empty")
	}

	body, err := json.Marshal(Request{
		Inputs:      prompt,
		MaxLength:   DefaultMaxLength,
		Temperature: DefaultTemperature,
	})
	if err != nil {
		return failed(KindInvalid, "marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return failed(KindInvalid, "creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failed(KindTransport, "executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return Result{Err: &Error{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody))),
		}}
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return failed(KindTransport, "reading response: %w", err)
	}

	// The whole body must be one JSON array; trailing bytes are a decode failure.
	var gens []generation
	if err := json.Unmarshal(respBody, &gens); err != nil {
		return failed(KindDecode, "decoding response: %w", err)
	}

	if len(gens) == 0 || gens[0].GeneratedText == nil {
		return Result{Text: NoResponseText, Placeholder: true}
	}
	return Result{Text: *gens[0].GeneratedText}
}
