package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vk/aocrun/puzzle"
)

// Exit codes returned to the shell.
const (
	CodeUsage = 1
	CodeInput = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ErrBadCoordinate is wrapped by the ExitError returned for a first argument
// that is not of the form <day>:<part>.
var ErrBadCoordinate = errors.New("expected <day>:<part>")

// Invocation is a validated command line.
type Invocation struct {
	Bin   string
	Coord puzzle.Coordinate
	Mode  puzzle.Mode
}

// Usage returns the usage line for the given program name.
func Usage(bin string) string {
	return fmt.Sprintf("Usage: %s <day>:<part> [real|example]", bin)
}

// BinName returns the program name used in usage text and prompts.
func BinName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "aocrun"
	}
	return filepath.Base(args[0])
}

// Parse processes the raw argument list, including the program name at
// index 0.
func Parse(args []string) (*Invocation, error) {
	bin := BinName(args)
	if len(args) < 2 {
		return nil, usageError(bin, nil)
	}

	coord, err := parseCoordinate(args[1])
	if err != nil {
		return nil, usageError(bin, err)
	}
	if err := coord.Validate(); err != nil {
		return nil, usageError(bin, err)
	}

	mode := puzzle.Interactive
	if len(args) > 2 {
		mode = puzzle.ParseMode(args[2])
	}

	return &Invocation{Bin: bin, Coord: coord, Mode: mode}, nil
}

func parseCoordinate(s string) (puzzle.Coordinate, error) {
	dayStr, partStr, ok := strings.Cut(s, ":")
	if !ok {
		return puzzle.Coordinate{}, fmt.Errorf("%w, got %q", ErrBadCoordinate, s)
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return puzzle.Coordinate{}, fmt.Errorf("%w: bad day %q", ErrBadCoordinate, dayStr)
	}
	part, err := strconv.Atoi(partStr)
	if err != nil {
		return puzzle.Coordinate{}, fmt.Errorf("%w: bad part %q", ErrBadCoordinate, partStr)
	}
	return puzzle.Coordinate{Day: day, Part: part}, nil
}

// usageError builds the exit-1 error. Only range violations get their own
// diagnostic line ahead of the usage text; malformed coordinates just get
// the usage.
func usageError(bin string, cause error) *ExitError {
	msg := Usage(bin)
	if errors.Is(cause, puzzle.ErrOutOfRange) {
		msg = cause.Error() + "\n" + msg
	}
	return &ExitError{Code: CodeUsage, Message: msg, Err: cause}
}
