// Package report prints the timing summary of a benchmark session.
package report

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/vk/aocrun/internal/bench"
)

const debugNote = " (debug build)"

// FormatDuration renders d in milliseconds below ten seconds and in seconds
// above.
func FormatDuration(d time.Duration) string {
	if d < 10*time.Second {
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// Summary returns the timing line without the build annotation.
func Summary(r bench.Result) string {
	if !r.Multi() {
		return "Completed in " + FormatDuration(r.Mean)
	}
	return fmt.Sprintf("Completed %d runs in %s on average (min %s, max %s)",
		r.Runs(), FormatDuration(r.Mean), FormatDuration(r.Min), FormatDuration(r.Max))
}

// Line returns the full timing line.
func Line(r bench.Result, unoptimized bool) string {
	if unoptimized {
		return Summary(r) + debugNote
	}
	return Summary(r)
}

// Reporter writes timing lines to an output stream.
type Reporter struct {
	Out         io.Writer
	Unoptimized bool
}

// New returns a reporter for out that annotates non-optimized builds.
func New(out io.Writer) *Reporter {
	return &Reporter{Out: out, Unoptimized: Unoptimized()}
}

// Print writes the summary for r, with the build annotation highlighted.
func (rp *Reporter) Print(r bench.Result) error {
	line := Summary(r)
	if rp.Unoptimized {
		line += color.YellowString(debugNote)
	}
	_, err := fmt.Fprintln(rp.Out, line)
	return err
}

// Unoptimized reports whether this binary was built with compiler
// optimizations disabled or with the race detector, either of which makes
// timings unrepresentative.
var Unoptimized = sync.OnceValue(func() bool {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return false
	}
	return unoptimizedSettings(info.Settings)
})

func unoptimizedSettings(settings []debug.BuildSetting) bool {
	for _, s := range settings {
		switch s.Key {
		case "-gcflags":
			for _, f := range strings.Fields(s.Value) {
				// Accept both -N and package-pattern forms like all=-N.
				if _, flag, ok := strings.Cut(f, "="); ok {
					f = flag
				}
				if f == "-N" {
					return true
				}
			}
		case "-race":
			if s.Value == "true" {
				return true
			}
		}
	}
	return false
}
