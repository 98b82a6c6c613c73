// Package input acquires the puzzle input for one run, from standard input,
// from the real personal dataset or from the example in the puzzle text.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/aocrun/internal/ctxlog"
	"github.com/vk/aocrun/puzzle"
)

// Fetcher is the remote side of the Real and Example modes.
type Fetcher interface {
	// Input returns the personal input for a day.
	Input(ctx context.Context, year, day int) (string, error)
	// Example returns the scraped example. Errors wrapping
	// puzzle.ErrNoExample mean the page was retrieved but not understood.
	Example(ctx context.Context, year, day, part int) (*puzzle.ExampleResult, error)
}

// Provider produces the input text for an invocation.
type Provider struct {
	Bin     string
	Stdin   io.Reader
	Stdout  io.Writer
	Fetcher Fetcher
}

// Acquire returns the input for coord according to mode.
func (p *Provider) Acquire(ctx context.Context, year int, coord puzzle.Coordinate, mode puzzle.Mode) (string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Acquiring input.", "year", year, "coordinate", coord.String(), "mode", mode.String())

	switch mode {
	case puzzle.Real:
		return p.real(ctx, year, coord)
	case puzzle.Example:
		return p.example(ctx, year, coord)
	default:
		return p.interactive(coord)
	}
}

func (p *Provider) interactive(coord puzzle.Coordinate) (string, error) {
	fmt.Fprintf(p.Stdout,
		"Enter your puzzle input, ending with Ctrl-D (EOF): (use '%[1]s %[2]s real' to download your real data, or '%[1]s %[2]s example' for the example from the puzzle text)\n",
		p.Bin, coord)

	b, err := io.ReadAll(p.Stdin)
	if err != nil {
		return "", &Error{Kind: KindIO, Msg: "failed to read input from stdin", Err: err}
	}
	fmt.Fprint(p.Stdout, "\n\n")
	return string(b), nil
}

func (p *Provider) real(ctx context.Context, year int, coord puzzle.Coordinate) (string, error) {
	if p.Fetcher == nil {
		return "", &Error{Kind: KindFetch, Msg: "failed to retrieve input text", Err: errors.New("no fetcher configured")}
	}
	text, err := p.Fetcher.Input(ctx, year, coord.Day)
	if err != nil {
		return "", &Error{Kind: KindFetch, Msg: "failed to retrieve input text", Err: err}
	}
	return text, nil
}

func (p *Provider) example(ctx context.Context, year int, coord puzzle.Coordinate) (string, error) {
	if p.Fetcher == nil {
		return "", &Error{Kind: KindFetch, Msg: "failed to retrieve example", Err: errors.New("no fetcher configured")}
	}
	ex, err := p.Fetcher.Example(ctx, year, coord.Day, coord.Part)
	if err != nil {
		if errors.Is(err, puzzle.ErrNoExample) {
			return "", &Error{Kind: KindParse, Msg: "failed to parse example", Err: err}
		}
		return "", &Error{Kind: KindFetch, Msg: "failed to retrieve example", Err: err}
	}

	if ans, ok := ex.Answer(coord.Part); ok {
		fmt.Fprintf(p.Stdout, "Expected answer (scraped from the puzzle text, may be inaccurate): %s\n", ans)
	}
	return ex.Input(coord.Part), nil
}
