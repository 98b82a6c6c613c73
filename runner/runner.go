// Package runner is the entry point used by a year's solutions binary:
//
//	func main() {
//		runner.Main(2023, days)
//	}
//
// The binary is then invoked as `<bin> <day>:<part> [real|example]`. Exit
// status 1 means the command line was wrong, 2 means the input could not
// be retrieved.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/aocrun/internal/aocclient"
	"github.com/vk/aocrun/internal/app"
	"github.com/vk/aocrun/internal/bench"
	"github.com/vk/aocrun/internal/cli"
	"github.com/vk/aocrun/internal/config"
	"github.com/vk/aocrun/internal/ctxlog"
	"github.com/vk/aocrun/internal/hcl"
	"github.com/vk/aocrun/internal/input"
	"github.com/vk/aocrun/puzzle"
)

// Env is the process environment a run sees.
type Env struct {
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// OSEnv returns the environment of the current process.
func OSEnv() Env {
	return Env{
		Args:   os.Args,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

// Main runs the selected solver of table and exits the process.
func Main(year int, table puzzle.Table) {
	os.Exit(Run(context.Background(), OSEnv(), year, &table))
}

// Run executes one invocation and returns the process exit status. A
// failure to read standard input is not an exit status: Run panics, as
// there is nothing sensible left to do.
func Run(ctx context.Context, env Env, year int, table *puzzle.Table) int {
	err := run(ctx, env, year, table, nil)
	if err == nil {
		return 0
	}

	var inErr *input.Error
	if errors.As(err, &inErr) && inErr.Kind == input.KindIO {
		panic(inErr.Error())
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(env.Stderr, exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintln(env.Stderr, err)
	return 1
}

// run encapsulates the invocation for easier testing. fetcher replaces the
// adventofcode.com client when non-nil.
func run(ctx context.Context, env Env, year int, table *puzzle.Table, fetcher input.Fetcher) error {
	inv, err := cli.Parse(env.Args)
	if err != nil {
		return err
	}

	// Use a minimal logger until the configured one exists.
	ctx = ctxlog.WithLogger(ctx, app.NewLogger("warn", "text", env.Stderr))
	settings, err := hcl.NewLoader(env.Getenv).Load(ctx, config.Path(env.Getenv))
	if err != nil {
		return &cli.ExitError{Code: cli.CodeUsage, Message: err.Error(), Err: err}
	}

	if fetcher == nil && inv.Mode != puzzle.Interactive {
		client := aocclient.New(settings, env.Getenv)
		defer client.Close()
		fetcher = client
	}

	aocApp := app.NewApp(inv.Bin, app.Options{
		Year:     year,
		Table:    table,
		Settings: settings,
		Fetcher:  fetcher,
		Repeat:   bench.RepeatCount(env.Getenv),
		Stdin:    env.Stdin,
		Stdout:   env.Stdout,
		Stderr:   env.Stderr,
	})

	err = aocApp.Run(ctx, inv.Coord, inv.Mode)
	var inErr *input.Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, app.ErrNotImplemented):
		return &cli.ExitError{Code: cli.CodeUsage, Message: err.Error(), Err: err}
	case errors.As(err, &inErr) && inErr.Kind != input.KindIO:
		return &cli.ExitError{Code: cli.CodeInput, Message: inErr.Error(), Err: err}
	default:
		return err
	}
}
