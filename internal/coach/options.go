package coach

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidOption   = errors.New("invalid option")
	ErrInvalidProgress = errors.New("progress must be an integer between 0 and 100")
)

// Mood is how the user feels today.
type Mood string

const (
	Motivated Mood = "Motivated"
	Neutral   Mood = "Neutral"
	Down      Mood = "Down"
)

// Goal is a self-improvement goal.
type Goal string

const (
	BuildResilience       Goal = "Build Resilience"
	EnhanceFocus          Goal = "Enhance Focus"
	BoostConfidence       Goal = "Boost Confidence"
	StayConsistent        Goal = "Stay Consistent"
	DevelopSelfDiscipline Goal = "Develop Self-Discipline"
	PracticeGratitude     Goal = "Practice Gratitude"
	ImproveEmotionalIntel Goal = "Improve Emotional Intelligence"
	MasterMeditation      Goal = "Master Meditation"
	IncreaseProductivity  Goal = "Increase Productivity"
)

// Topic is a mindfulness and personal-growth subject to learn about.
type Topic string

const (
	DailyMeditationTips        Topic = "Daily Meditation Tips"
	BuildGrowthMindset         Topic = "How to Build a Growth Mindset"
	OvercomingNegativeThoughts Topic = "Overcoming Negative Thoughts"
	HowToSelfDiscipline        Topic = "How to Develop Self-Discipline"
	ScienceOfGratitude         Topic = "The Science of Gratitude"
	HabitsForSuccess           Topic = "Habits for Success"
	HowToImproveFocus          Topic = "How to Improve Focus"
	MorningRoutines            Topic = "Morning Routines for Success"
)

const (
	MinProgress     = 0
	MaxProgress     = 100
	DefaultProgress = 50
)

// Option lists in display order. The first entry of each is the default.
var (
	Moods = []Mood{Motivated, Neutral, Down}

	Goals = []Goal{
		BuildResilience, EnhanceFocus, BoostConfidence,
		StayConsistent, DevelopSelfDiscipline, PracticeGratitude,
		ImproveEmotionalIntel, MasterMeditation, IncreaseProductivity,
	}

	Topics = []Topic{
		DailyMeditationTips, BuildGrowthMindset,
		OvercomingNegativeThoughts, HowToSelfDiscipline,
		ScienceOfGratitude, HabitsForSuccess,
		HowToImproveFocus, MorningRoutines,
	}
)

// Selection is the full state of the form for one request.
type Selection struct {
	Mood     Mood
	Goal     Goal
	Topic    Topic
	Progress int
}

// DefaultSelection is what a fresh page shows.
func DefaultSelection() Selection {
	return Selection{
		Mood:     Moods[0],
		Goal:     Goals[0],
		Topic:    Topics[0],
		Progress: DefaultProgress,
	}
}

// Options is the serializable set of choices offered to the user.
type Options struct {
	Moods           []Mood  `json:"moods"`
	Goals           []Goal  `json:"goals"`
	Topics          []Topic `json:"topics"`
	DefaultProgress int     `json:"default_progress"`
}

// AllOptions returns copies of the option lists.
func AllOptions() Options {
	return Options{
		Moods:           append([]Mood(nil), Moods...),
		Goals:           append([]Goal(nil), Goals...),
		Topics:          append([]Topic(nil), Topics...),
		DefaultProgress: DefaultProgress,
	}
}

func ParseMood(s string) (Mood, error) {
	return parseOption("mood", s, Moods)
}

func ParseGoal(s string) (Goal, error) {
	return parseOption("goal", s, Goals)
}

func ParseTopic(s string) (Topic, error) {
	return parseOption("topic", s, Topics)
}

// ParseProgress parses a progress rating in [0,100].
func ParseProgress(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidProgress, s)
	}
	if err := ValidateProgress(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ProgressFromNumber converts a JSON number to a progress rating. Fractional
// values are rejected, not truncated.
func ProgressFromNumber(v float64) (int, error) {
	if math.IsNaN(v) || v != math.Trunc(v) || v < MinProgress || v > MaxProgress {
		return 0, fmt.Errorf("%w: %v", ErrInvalidProgress, v)
	}
	return int(v), nil
}

func ValidateProgress(n int) error {
	if n < MinProgress || n > MaxProgress {
		return fmt.Errorf("%w: %d", ErrInvalidProgress, n)
	}
	return nil
}

// parseOption matches s against the canonical values case-insensitively.
func parseOption[T ~string](field, s string, valid []T) (T, error) {
	s = strings.TrimSpace(s)
	for _, v := range valid {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrInvalidOption, field, s)
}
