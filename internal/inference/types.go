package inference

import "fmt"

// Request is the text-generation payload accepted by the Hugging Face
// Inference API.
type Request struct {
	Inputs      string  `json:"inputs"`
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
}

// generation is a single element of the response array. GeneratedText is a
// pointer so an absent field can be told apart from an empty string.
type generation struct {
	GeneratedText *string `json:"generated_text"`
}

// ErrorKind classifies why a generation failed.
type ErrorKind int

const (
	KindInvalid ErrorKind = iota + 1
	KindTransport
	KindStatus
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalid:
		return "invalid_request"
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error describes a failed generation. StatusCode is set only for KindStatus.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Result is the outcome of one Generate call: generated text, or an Error.
// Placeholder is true when the API answered successfully but carried no
// generated text.
type Result struct {
	Text        string
	Placeholder bool
	Err         *Error
}

// OK reports whether the generation reached the API and was decoded.
func (r Result) OK() bool { return r.Err == nil }

// Display returns the string shown to the user for this result.
func (r Result) Display() string {
	if r.Err != nil {
		return ErrorPrefix + r.Err.Error()
	}
	return r.Text
}

func failed(kind ErrorKind, format string, args ...any) Result {
	return Result{Err: &Error{Kind: kind, Err: fmt.Errorf(format, args...)}}
}
