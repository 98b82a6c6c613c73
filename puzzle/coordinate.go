package puzzle

import (
	"errors"
	"fmt"
)

const (
	// Days is the number of puzzle days in one event.
	Days = 25
	// Parts is the number of parts per day.
	Parts = 2
)

// ErrOutOfRange is returned by Coordinate.Validate.
var ErrOutOfRange = errors.New("day must be between 1-25 and part must be 1 or 2")

// Coordinate identifies one puzzle by its day and part.
type Coordinate struct {
	Day  int
	Part int
}

// Validate checks the day and part bounds.
func (c Coordinate) Validate() error {
	if c.Day < 1 || c.Day > Days || c.Part < 1 || c.Part > Parts {
		return ErrOutOfRange
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%d:%d", c.Day, c.Part)
}

// Mode selects where the puzzle input comes from.
type Mode int

const (
	// Interactive reads the input from standard input.
	Interactive Mode = iota
	// Real downloads (or loads from cache) the personal puzzle input.
	Real
	// Example scrapes the example from the puzzle page.
	Example
)

// ParseMode maps the optional mode token. Unknown tokens fall back to
// Interactive.
func ParseMode(token string) Mode {
	switch token {
	case "real":
		return Real
	case "example":
		return Example
	default:
		return Interactive
	}
}

func (m Mode) String() string {
	switch m {
	case Real:
		return "real"
	case Example:
		return "example"
	default:
		return "interactive"
	}
}
