package executor

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/arthur-debert/permly/pkg/logging"
	"github.com/rs/zerolog"
)

// ProcessRunner spawns programs as child processes. Standard streams are
// inherited from permly unless overridden; there is no timeout.
type ProcessRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	logger zerolog.Logger
}

// NewProcessRunner returns a runner wired to the process's own streams
func NewProcessRunner() *ProcessRunner {
	return &ProcessRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logging.GetLogger("executor.runner"),
	}
}

// Run starts argv[0] with the remaining arguments and waits for it. A
// non-zero exit is returned as *exec.ExitError.
func (r *ProcessRunner) Run(ctx context.Context, argv []string) error {
	logging.LogCommand(argv[0], argv[1:])

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err != nil {
		r.logger.Debug().
			Err(err).
			Str("command", argv[0]).
			Strs("args", argv[1:]).
			Msg("Command did not succeed")
		return err
	}

	r.logger.Debug().
		Str("command", argv[0]).
		Msg("Command executed successfully")
	return nil
}
