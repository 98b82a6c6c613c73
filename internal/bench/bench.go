// Package bench times a solver over one or more sequential runs.
package bench

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/vk/aocrun/internal/config"
	"github.com/vk/aocrun/internal/ctxlog"
	"github.com/vk/aocrun/puzzle"
)

// RepeatCount reads the number of runs from the environment. Missing,
// malformed and non-positive values mean a single run.
func RepeatCount(getenv func(string) string) int {
	n, err := strconv.Atoi(strings.TrimSpace(getenv(config.EnvRepeat)))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Result holds the measured durations, in run order, and their summary.
type Result struct {
	Durations []time.Duration
	Mean      time.Duration
	Min       time.Duration
	Max       time.Duration
}

// Runs returns the number of measured runs.
func (r Result) Runs() int {
	return len(r.Durations)
}

// Multi reports whether min and max carry information.
func (r Result) Multi() bool {
	return len(r.Durations) > 1
}

// maxPrealloc bounds the up-front duration buffer; AOC_REPEAT is unbounded.
const maxPrealloc = 1 << 16

// clock is replaced in tests.
type clock func() time.Time

// Run calls solver count times on the calling goroutine. Each run gets its
// own copy of input, made before its timer starts.
func Run(ctx context.Context, solver puzzle.Solver, input string, count int) Result {
	return run(ctx, solver, input, count, time.Now)
}

func run(ctx context.Context, solver puzzle.Solver, input string, count int, now clock) Result {
	logger := ctxlog.FromContext(ctx)
	if count < 1 {
		count = 1
	}

	durations := make([]time.Duration, 0, min(count, maxPrealloc))
	for i := range count {
		text := input
		if count > 1 {
			text = strings.Clone(input)
		}
		start := now()
		solver(text)
		d := now().Sub(start)
		durations = append(durations, d)
		logger.Debug("Benchmark run finished.", "run", i+1, "of", count, "duration", d)
	}
	return Stats(durations)
}

// Stats summarizes durations. The mean of an empty set is zero.
func Stats(durations []time.Duration) Result {
	r := Result{Durations: durations}
	if len(durations) == 0 {
		return r
	}
	var total time.Duration
	r.Min, r.Max = durations[0], durations[0]
	for _, d := range durations {
		total += d
		r.Min = min(r.Min, d)
		r.Max = max(r.Max, d)
	}
	r.Mean = total / time.Duration(len(durations))
	return r
}
