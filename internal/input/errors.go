package input

import "fmt"

// Kind classifies input acquisition failures.
type Kind int

const (
	// KindIO is a failure to read standard input.
	KindIO Kind = iota + 1
	// KindFetch is a transport failure talking to the puzzle site.
	KindFetch
	// KindParse means the puzzle page was retrieved but held no usable example.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindFetch:
		return "fetch"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error is returned by Provider.Acquire. Msg is the short diagnostic shown
// to the user.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
