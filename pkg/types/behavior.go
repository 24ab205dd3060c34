package types

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/arthur-debert/permly/pkg/errors"
	"github.com/arthur-debert/permly/pkg/paths"
)

// BehaviorKind names a Behavior variant
type BehaviorKind string

const (
	KindRun              BehaviorKind = "run"
	KindAppendLineToFile BehaviorKind = "append"
	KindNoOperation      BehaviorKind = "noop"
)

// Behavior is one declarative action produced by a subcommand parser.
// The set of implementations is closed: Run, AppendLineToFile and
// NoOperationReason are the only variants.
type Behavior interface {
	// Execute performs the action against the given environment
	Execute(ctx context.Context, env ExecEnv) error

	// Render returns the human-readable preview line
	Render() string

	// Kind identifies the variant
	Kind() BehaviorKind

	isBehavior()
}

// Run spawns an external program with inherited standard I/O.
// Cmd[0] is the executable and Cmd is never empty.
type Run struct {
	Cmd []string
}

// NewRun builds a Run behavior, rejecting an empty argv
func NewRun(argv ...string) (Run, error) {
	if len(argv) == 0 {
		return Run{}, errors.New(errors.ErrInvalidInput, "run behavior requires a command")
	}
	return Run{Cmd: append([]string(nil), argv...)}, nil
}

// AppendLineToFile appends a single line to a file. Filename may start with
// "~/", which is expanded against the user's home directory at execution time.
type AppendLineToFile struct {
	Filename string
	Line     string
}

// NoOperationReason records why nothing was done for an input
type NoOperationReason struct {
	Reason string
}

func (r Run) Execute(ctx context.Context, env ExecEnv) error {
	if len(r.Cmd) == 0 {
		return errors.New(errors.ErrInvalidInput, "run behavior requires a command")
	}

	err := env.Runner.Run(ctx, r.Cmd)
	if err == nil {
		return nil
	}

	var exitErr interface{ ExitCode() int }
	if stderrors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			return errors.Wrapf(err, errors.ErrCommandKilled, "%s terminated without an exit code", r.Cmd[0]).
				WithDetail("argv", r.Cmd).
				WithExitCode(errors.ExitKilled)
		}
		return errors.Wrapf(err, errors.ErrCommandFailed, "%s exited with status %d", r.Cmd[0], code).
			WithDetail("argv", r.Cmd).
			WithExitCode(code)
	}

	return errors.Wrapf(err, errors.ErrCommandStart, "failed to start %s", r.Cmd[0]).
		WithDetail("argv", r.Cmd).
		WithExitCode(errors.ExitCommandStart)
}

func (r Run) Render() string {
	return "will run: " + FormatCommand(r.Cmd)
}

func (r Run) Kind() BehaviorKind { return KindRun }

func (r Run) isBehavior() {}

func (a AppendLineToFile) Execute(_ context.Context, env ExecEnv) error {
	target := paths.ExpandHome(a.Filename)

	// The target must already exist; permly never creates config files.
	fp, err := env.FS.OpenFile(target, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return errors.Wrapf(err, errors.ErrAppendOpen, "cannot open %s for appending", target).
			WithDetail("path", target).
			WithExitCode(errors.ExitAppendOpen)
	}

	_, err = fmt.Fprintln(fp, a.Line)
	if closeErr := fp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrAppendWrite, "cannot write to %s", target).
			WithDetail("path", target).
			WithExitCode(errors.ExitAppendWrite)
	}
	return nil
}

func (a AppendLineToFile) Render() string {
	return fmt.Sprintf("append to `%s`: %s", a.Filename, a.Line)
}

func (a AppendLineToFile) Kind() BehaviorKind { return KindAppendLineToFile }

func (a AppendLineToFile) isBehavior() {}

func (n NoOperationReason) Execute(context.Context, ExecEnv) error {
	return nil
}

func (n NoOperationReason) Render() string {
	return "skipping: " + n.Reason
}

func (n NoOperationReason) Kind() BehaviorKind { return KindNoOperation }

func (n NoOperationReason) isBehavior() {}
