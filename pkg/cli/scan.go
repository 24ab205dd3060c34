package cli

import (
	"strings"

	"github.com/arthur-debert/permly/pkg/errors"
	"github.com/arthur-debert/permly/pkg/types"
)

// Global long options
const (
	OptDryRun  = "--dry-run"
	OptNow     = "--now"
	OptVerbose = "--verbose"
	OptHelp    = "--help"
	OptVersion = "--version"
	OptEnd     = "--"
)

// Flags are the global options that steer the tool itself rather than the
// behaviors it produces
type Flags struct {
	// Verbosity counts -v occurrences; 1 is info, 2 debug, 3 and up trace
	Verbosity int
	Help      bool
	Version   bool
}

// Scan builds the invocation config from the process arguments, argv[0]
// excluded. Short option clusters only act on 'n' (dry run) and 'v'
// (verbosity); other letters are ignored.
func Scan(tokens []string) (types.Config, Flags, error) {
	var (
		cfg      types.Config
		flags    Flags
		doneOpts bool
	)

	for i, token := range tokens {
		if doneOpts {
			return cfg.WithCommand(token, tokens[i+1:]...), flags, nil
		}

		switch {
		case token == OptDryRun:
			cfg.DryRun = true
		case token == OptNow:
			cfg.Now = true
		case token == OptVerbose:
			flags.Verbosity++
		case token == OptHelp:
			flags.Help = true
		case token == OptVersion:
			flags.Version = true
		case token == OptEnd:
			doneOpts = true
		case strings.HasPrefix(token, "--"):
			return cfg, flags, errors.Newf(errors.ErrUnknownOption, "Unknown opt %s", token).
				WithDetail("option", token)
		case strings.HasPrefix(token, "-"):
			for _, c := range token[1:] {
				switch c {
				case 'n':
					cfg.DryRun = true
				case 'v':
					flags.Verbosity++
				}
			}
		default:
			return cfg.WithCommand(token, tokens[i+1:]...), flags, nil
		}
	}

	return cfg, flags, nil
}
