package bench

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by the next step every time it is read twice, so each
// run measures exactly one step.
func fakeClock(steps ...time.Duration) clock {
	now := time.Unix(0, 0)
	reads := 0
	return func() time.Time {
		if reads%2 == 1 {
			now = now.Add(steps[reads/2])
		}
		reads++
		return now
	}
}

func TestRepeatCount(t *testing.T) {
	t.Parallel()

	testCases := map[string]int{
		"":     1,
		"5":    5,
		" 3 ":  3,
		"1":    1,
		"0":    1,
		"-2":   1,
		"many": 1,
		"2.5":  1,
	}
	for value, want := range testCases {
		getenv := func(k string) string {
			if k == "AOC_REPEAT" {
				return value
			}
			return ""
		}
		require.Equal(t, want, RepeatCount(getenv), "AOC_REPEAT=%q", value)
	}
}

func TestRun_MultipleRuns(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var inputs []string
	solver := func(s string) { inputs = append(inputs, s) }
	steps := []time.Duration{4 * time.Millisecond, 2 * time.Millisecond, 9 * time.Millisecond, 5 * time.Millisecond}

	// --- Act ---
	res := run(context.Background(), solver, "input", len(steps), fakeClock(steps...))

	// --- Assert ---
	require.Equal(t, []string{"input", "input", "input", "input"}, inputs, "every run sees the original input")
	if diff := cmp.Diff(steps, res.Durations); diff != "" {
		t.Errorf("durations mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 5*time.Millisecond, res.Mean)
	require.Equal(t, 2*time.Millisecond, res.Min)
	require.Equal(t, 9*time.Millisecond, res.Max)
	require.True(t, res.Multi())
	require.Equal(t, 4, res.Runs())
}

func TestRun_SingleRun(t *testing.T) {
	t.Parallel()

	calls := 0
	res := run(context.Background(), func(string) { calls++ }, "x", 1, fakeClock(7*time.Millisecond))

	require.Equal(t, 1, calls)
	require.False(t, res.Multi())
	require.Equal(t, 7*time.Millisecond, res.Mean)
}

func TestRun_NonPositiveCountRunsOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	res := Run(context.Background(), func(string) { calls++ }, "x", 0)

	require.Equal(t, 1, calls)
	require.Equal(t, 1, res.Runs())
}

func TestStats(t *testing.T) {
	t.Parallel()

	require.Equal(t, Result{}, Stats(nil))

	res := Stats([]time.Duration{3, 1, 2})
	require.Equal(t, time.Duration(2), res.Mean)
	require.Equal(t, time.Duration(1), res.Min)
	require.Equal(t, time.Duration(3), res.Max)
}

func TestRun_HugeCountStartsRunning(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	calls := 0
	solver := func(string) {
		calls++
		if calls == 3 {
			panic("stop")
		}
	}

	// --- Act & Assert ---
	require.PanicsWithValue(t, "stop", func() {
		run(context.Background(), solver, "input", math.MaxInt, time.Now)
	})
	require.Equal(t, 3, calls)
}
