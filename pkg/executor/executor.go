package executor

import (
	"context"
	"os"
	"time"

	"github.com/arthur-debert/permly/pkg/filesystem"
	"github.com/arthur-debert/permly/pkg/logging"
	"github.com/arthur-debert/permly/pkg/output"
	"github.com/arthur-debert/permly/pkg/types"
	"github.com/rs/zerolog"
)

// Previewer renders a behavior instead of executing it
type Previewer interface {
	Preview(b types.Behavior) error
}

// Options contains configuration for the executor
type Options struct {
	DryRun bool

	// Logger defaults to the "executor" component logger
	Logger *zerolog.Logger

	// FS and Runner are the capabilities behaviors execute against
	FS     types.FS
	Runner types.Runner

	// Printer receives dry-run previews, plain stdout when nil
	Printer Previewer
}

// Executor runs or previews behaviors
type Executor struct {
	dryRun  bool
	logger  zerolog.Logger
	env     types.ExecEnv
	printer Previewer
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	runner := opts.Runner
	if runner == nil {
		runner = NewProcessRunner()
	}

	printer := opts.Printer
	if printer == nil {
		printer = output.NewPrinter(os.Stdout, false)
	}

	return &Executor{
		dryRun:  opts.DryRun,
		logger:  logger,
		env:     types.ExecEnv{FS: fs, Runner: runner},
		printer: printer,
	}
}

// Execute processes behaviors in order and returns the first error.
// Behaviors after a failing one are not attempted.
func (e *Executor) Execute(ctx context.Context, behaviors []types.Behavior) error {
	for i, b := range behaviors {
		if e.dryRun {
			if err := e.printer.Preview(b); err != nil {
				return err
			}
			continue
		}

		if err := e.executeBehavior(ctx, i, b); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) executeBehavior(ctx context.Context, index int, b types.Behavior) error {
	start := time.Now()

	e.logger.Debug().
		Int("index", index).
		Str("kind", string(b.Kind())).
		Str("behavior", b.Render()).
		Msg("Executing behavior")

	if err := b.Execute(ctx, e.env); err != nil {
		e.logger.Error().
			Err(err).
			Int("index", index).
			Str("kind", string(b.Kind())).
			Msg("Behavior execution failed")
		return err
	}

	e.logger.Info().
		Str("kind", string(b.Kind())).
		Str("behavior", b.Render()).
		Dur("duration", time.Since(start)).
		Msg("Behavior executed successfully")
	return nil
}
