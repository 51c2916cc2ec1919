package api

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/kalambet/mindset/internal/coach"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const (
	actionBoost   = "boost"
	actionInsight = "insight"
)

type pageData struct {
	Options   coach.Options
	Selection coach.Selection
	Feedback  coach.Feedback

	// Action is the button that produced Result: "boost" or "insight".
	Action       string
	Result       string
	ResultFailed bool

	Error string
}

// handlePage serves the single coaching page. The form posts back every
// field, so each submission is self-contained.
func handlePage(c Coach) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{
			Options:   coach.AllOptions(),
			Selection: coach.DefaultSelection(),
		}
		status := http.StatusOK

		if r.Method == http.MethodPost {
			r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
			if err := r.ParseForm(); err != nil {
				status = http.StatusBadRequest
				data.Error = "Could not read the form: " + err.Error()
			} else {
				sel, err := selectionFromForm(r)
				data.Selection = sel
				if err != nil {
					status = http.StatusBadRequest
					data.Error = err.Error()
				} else {
					runAction(r, c, &data)
				}
			}
		}

		data.Feedback = coach.FeedbackFor(data.Selection.Progress)
		renderPage(w, status, data)
	}
}

func runAction(r *http.Request, c Coach, data *pageData) {
	switch action := r.PostForm.Get("action"); action {
	case actionBoost:
		res := c.Boost(r.Context(), data.Selection.Mood, data.Selection.Goal)
		data.Action, data.Result, data.ResultFailed = action, res.Display(), !res.OK()
	case actionInsight:
		res := c.Insight(r.Context(), data.Selection.Topic)
		data.Action, data.Result, data.ResultFailed = action, res.Display(), !res.OK()
	}
	// Any other action, including the progress slider, only re-renders.
}

// selectionFromForm reads the form, keeping defaults for absent fields. Every
// valid field is applied even when another one is rejected, so an error page
// still shows what the user picked.
func selectionFromForm(r *http.Request) (coach.Selection, error) {
	sel := coach.DefaultSelection()
	var errs []error

	if v := r.PostForm.Get("mood"); v != "" {
		if mood, err := coach.ParseMood(v); err != nil {
			errs = append(errs, err)
		} else {
			sel.Mood = mood
		}
	}
	if v := r.PostForm.Get("goal"); v != "" {
		if goal, err := coach.ParseGoal(v); err != nil {
			errs = append(errs, err)
		} else {
			sel.Goal = goal
		}
	}
	if v := r.PostForm.Get("topic"); v != "" {
		if topic, err := coach.ParseTopic(v); err != nil {
			errs = append(errs, err)
		} else {
			sel.Topic = topic
		}
	}
	if v := r.PostForm.Get("progress"); v != "" {
		if progress, err := coach.ParseProgress(v); err != nil {
			errs = append(errs, err)
		} else {
			sel.Progress = progress
		}
	}
	return sel, errors.Join(errs...)
}

func renderPage(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		slog.Error("rendering page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
