package puzzle

import "errors"

// ExampleResult is the example dataset scraped from a puzzle page. Empty strings
// mark the optional fields as absent.
type ExampleResult struct {
	Data        string
	Part1Answer string
	Part2Answer string
	// Part2Data is set when part two introduces its own example.
	Part2Data string
}

// Answer returns the expected answer for part, if the page had one.
func (e *ExampleResult) Answer(part int) (string, bool) {
	var ans string
	switch part {
	case 1:
		ans = e.Part1Answer
	case 2:
		ans = e.Part2Answer
	}
	return ans, ans != ""
}

// Input returns the example data for part. Part two falls back to the base
// data when it has none of its own.
func (e *ExampleResult) Input(part int) string {
	if part == 2 && e.Part2Data != "" {
		return e.Part2Data
	}
	return e.Data
}

// ErrNoExample is wrapped by fetchers when a puzzle page was retrieved but
// no example could be scraped from it.
var ErrNoExample = errors.New("no example found in puzzle text")
