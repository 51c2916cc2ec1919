package coach

// Band is one of the three static feedback levels for a progress rating.
type Band int

const (
	BandWarning Band = iota
	BandInfo
	BandSuccess
)

func (b Band) String() string {
	switch b {
	case BandSuccess:
		return "success"
	case BandInfo:
		return "info"
	default:
		return "warning"
	}
}

func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

const (
	successMessage = "You're doing amazing! Keep up the great work! 🚀"
	infoMessage    = "Great progress! Stay consistent! 💪"
	warningMessage = "Every small step counts! Keep going! 🌻"
)

// Feedback is the message shown under the progress slider.
type Feedback struct {
	Progress int    `json:"progress"`
	Band     Band   `json:"band"`
	Message  string `json:"message"`
}

// FeedbackFor maps a progress rating to its band: above 75 is success,
// above 50 is info, anything else is a warning.
func FeedbackFor(progress int) Feedback {
	switch {
	case progress > 75:
		return Feedback{Progress: progress, Band: BandSuccess, Message: successMessage}
	case progress > 50:
		return Feedback{Progress: progress, Band: BandInfo, Message: infoMessage}
	default:
		return Feedback{Progress: progress, Band: BandWarning, Message: warningMessage}
	}
}
