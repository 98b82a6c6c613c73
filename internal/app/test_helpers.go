package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vk/aocrun/internal/config"
)

// SetupAppTest builds an App reading stdin from the given text. It returns
// the captured stdout and the debug log, which is kept apart from stdout.
// The debug-build annotation is off so timing lines are stable.
func SetupAppTest(t *testing.T, opts Options, stdin string) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	stdout, logs := &bytes.Buffer{}, &bytes.Buffer{}
	if opts.Settings == nil {
		settings := config.Defaults()
		settings.LogLevel = "debug"
		opts.Settings = settings
	}
	opts.Stdin = strings.NewReader(stdin)
	opts.Stdout = stdout
	opts.Stderr = logs

	testApp := NewApp("aoc-test", opts)
	testApp.Reporter().Unoptimized = false
	return testApp, stdout, logs
}
