package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/aocrun/puzzle"
)

func TestProbe(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: "day 1 part 2: 0 bytes, 0 lines, widest line 0\n"},
		{name: "trailing newline", input: "ab\ncdef\n", want: "day 1 part 2: 8 bytes, 2 lines, widest line 4\n"},
		{name: "no trailing newline", input: "abc", want: "day 1 part 2: 3 bytes, 1 lines, widest line 3\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			probe(out, puzzle.Coordinate{Day: 1, Part: 2}, tc.input)

			require.Equal(t, tc.want, out.String())
		})
	}
}

func TestDaysTableIsComplete(t *testing.T) {
	t.Parallel()

	for d := range puzzle.Days {
		for p := range puzzle.Parts {
			require.NotNil(t, days[d][p], "day %d part %d", d+1, p+1)
		}
	}
}
