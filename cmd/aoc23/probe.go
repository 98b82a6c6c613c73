package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/aocrun/puzzle"
)

var days = puzzle.Fill(func(c puzzle.Coordinate) puzzle.Solver {
	return func(input string) { probe(os.Stdout, c, input) }
})

// probe prints the shape of the input instead of an answer.
func probe(w io.Writer, c puzzle.Coordinate, input string) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if input == "" {
		lines = nil
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	fmt.Fprintf(w, "day %d part %d: %d bytes, %d lines, widest line %d\n", c.Day, c.Part, len(input), len(lines), width)
}
