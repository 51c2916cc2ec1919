package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kalambet/mindset/internal/coach"
	"github.com/kalambet/mindset/internal/inference"
)

const maxRequestBodySize = 1 << 20 // 1MB

// Coach is the coaching service behind the page, the JSON API and MCP.
// *coach.Coach satisfies it.
type Coach interface {
	Boost(ctx context.Context, mood coach.Mood, goal coach.Goal) inference.Result
	Insight(ctx context.Context, topic coach.Topic) inference.Result
}

// NewHandler returns the HTTP handler serving the coaching page and the
// JSON API.
func NewHandler(c Coach) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog)

	r.Get("/health", handleHealth)
	r.Get("/", handlePage(c))
	r.Post("/", handlePage(c))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/options", handleOptions)
		r.Post("/boost", handleBoost(c))
		r.Post("/insight", handleInsight(c))
		r.Get("/progress/{value}", handleProgress)
	})

	return r
}

// BoostRequest is the body of POST /v1/boost.
type BoostRequest struct {
	Mood string `json:"mood"`
	Goal string `json:"goal"`
}

// InsightRequest is the body of POST /v1/insight.
type InsightRequest struct {
	Topic string `json:"topic"`
}

// GenerationResponse carries one generation. Inference failures are
// reported in Error with HTTP 200; Display is always what a user would see.
type GenerationResponse struct {
	Text        string           `json:"text,omitempty"`
	Placeholder bool             `json:"placeholder,omitempty"`
	Display     string           `json:"display"`
	Error       *GenerationError `json:"error,omitempty"`
}

type GenerationError struct {
	Kind    string `json:"kind"`
	Status  int    `json:"status,omitempty"`
	Message string `json:"message"`
}

func newGenerationResponse(res inference.Result) GenerationResponse {
	out := GenerationResponse{Display: res.Display()}
	if res.Err != nil {
		out.Error = &GenerationError{
			Kind:    res.Err.Kind.String(),
			Status:  res.Err.StatusCode,
			Message: res.Err.Error(),
		}
		return out
	}
	out.Text = res.Text
	out.Placeholder = res.Placeholder
	return out
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func handleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, coach.AllOptions())
}

func handleBoost(c Coach) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BoostRequest
		if !decodeBody(w, r, &req) {
			return
		}

		mood, err := coach.ParseMood(req.Mood)
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
			return
		}
		goal, err := coach.ParseGoal(req.Goal)
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
			return
		}

		writeJSON(w, http.StatusOK, newGenerationResponse(c.Boost(r.Context(), mood, goal)))
	}
}

func handleInsight(c Coach) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InsightRequest
		if !decodeBody(w, r, &req) {
			return
		}

		topic, err := coach.ParseTopic(req.Topic)
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
			return
		}

		writeJSON(w, http.StatusOK, newGenerationResponse(c.Insight(r.Context(), topic)))
	}
}

func handleProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := coach.ParseProgress(chi.URLParam(r, "value"))
	if err != nil {
		httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
		return
	}
	writeJSON(w, http.StatusOK, coach.FeedbackFor(progress))
}

// decodeBody reads a size-capped JSON body into v, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpError(w, http.StatusRequestEntityTooLarge, "invalid_request_error", "request body exceeds %d bytes", tooLarge.Limit)
			return false
		}
		httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"message": fmt.Sprintf(format, args...),
			"type":    errType,
		},
	})
}
