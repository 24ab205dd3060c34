// Package dispatcher maps the invoked subcommand to its parser. It is the
// entry point from the CLI layer into the handlers.
package dispatcher

import (
	"github.com/arthur-debert/permly/pkg/errors"
	"github.com/arthur-debert/permly/pkg/handlers"
	"github.com/arthur-debert/permly/pkg/logging"
	"github.com/arthur-debert/permly/pkg/registry"
	"github.com/arthur-debert/permly/pkg/types"
)

// Options carries the dispatch table and the ambient lookups handed to
// parsers. Zero values select the built-in table, os.LookupEnv and
// paths.Canonicalize.
type Options struct {
	Parsers   registry.Registry[types.Parser]
	LookupEnv types.EnvLookup
	Resolve   types.PathResolver
}

// Dispatch selects the parser for cfg.Cmd and returns the behaviors it produces
func Dispatch(cfg types.Config, opts Options) ([]types.Behavior, error) {
	logger := logging.GetLogger("dispatcher")

	if !cfg.HasCmd {
		return nil, errors.New(errors.ErrNoCommand, "No command is specified!")
	}

	parsers := opts.Parsers
	if parsers == nil {
		parsers = handlers.NewRegistry()
	}

	parse, err := parsers.Get(cfg.Cmd)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrUnsupportedCommand, "Command not supported! %s", cfg.Cmd).
			WithDetail("command", cfg.Cmd).
			WithDetail("supported", parsers.List())
	}

	logger.Debug().
		Str("command", cfg.Cmd).
		Strs("args", cfg.Args).
		Bool("dryRun", cfg.DryRun).
		Bool("now", cfg.Now).
		Msg("Dispatching command")

	behaviors, err := parse(cfg, types.ParseEnv{
		LookupEnv: opts.LookupEnv,
		Resolve:   opts.Resolve,
	})
	if err != nil {
		logger.Debug().Err(err).Str("command", cfg.Cmd).Msg("Parse failed")
		return nil, err
	}

	logger.Info().
		Str("command", cfg.Cmd).
		Int("behaviors", len(behaviors)).
		Msg("Command parsed")
	return behaviors, nil
}
