package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/aocrun/internal/bench"
	"github.com/vk/aocrun/internal/config"
	"github.com/vk/aocrun/internal/ctxlog"
	"github.com/vk/aocrun/internal/input"
	"github.com/vk/aocrun/internal/report"
	"github.com/vk/aocrun/puzzle"
)

// ErrNotImplemented is returned when the table has no solver for the
// requested coordinate.
var ErrNotImplemented = errors.New("not implemented")

// Options holds everything an App needs for one invocation.
type Options struct {
	Year     int
	Table    *puzzle.Table
	Settings *config.Settings
	Fetcher  input.Fetcher
	Repeat   int

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// App encapsulates the runner's dependencies for a single invocation.
type App struct {
	logger   *slog.Logger
	year     int
	table    *puzzle.Table
	repeat   int
	provider *input.Provider
	reporter *report.Reporter
}

// NewApp is the constructor for the runner. The logger writes to
// opts.Stderr so that stdout only carries prompts, hints and timings.
func NewApp(bin string, opts Options) *App {
	settings := opts.Settings
	if settings == nil {
		settings = config.Defaults()
	}
	logger := NewLogger(settings.LogLevel, settings.LogFormat, opts.Stderr)
	logger.Debug("Logger configured successfully.")

	return &App{
		logger: logger,
		year:   opts.Year,
		table:  opts.Table,
		repeat: max(opts.Repeat, 1),
		provider: &input.Provider{
			Bin:     bin,
			Stdin:   opts.Stdin,
			Stdout:  opts.Stdout,
			Fetcher: opts.Fetcher,
		},
		reporter: report.New(opts.Stdout),
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Reporter returns the application's reporter.
func (a *App) Reporter() *report.Reporter {
	return a.reporter
}

// Run resolves the solver, acquires its input, times it and prints the
// summary.
func (a *App) Run(ctx context.Context, coord puzzle.Coordinate, mode puzzle.Mode) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "coordinate", coord.String(), "mode", mode.String())

	solver := a.table.Lookup(coord)
	if solver == nil {
		return fmt.Errorf("day %d part %d is %w", coord.Day, coord.Part, ErrNotImplemented)
	}

	text, err := a.provider.Acquire(ctx, a.year, coord, mode)
	if err != nil {
		return err
	}
	a.logger.Debug("Input acquired.", "bytes", len(text))

	res := bench.Run(ctx, solver, text, a.repeat)
	if err := a.reporter.Print(res); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.", "runs", res.Runs(), "mean", res.Mean)
	return nil
}
