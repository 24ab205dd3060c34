package sysctl

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/permly/pkg/constants"
	"github.com/arthur-debert/permly/pkg/errors"
	"github.com/arthur-debert/permly/pkg/logging"
	"github.com/arthur-debert/permly/pkg/types"
)

// Name is the subcommand this parser serves
const Name = "sysctl"

// Parse implements types.Parser for the sysctl subcommand
func Parse(cfg types.Config, _ types.ParseEnv) ([]types.Behavior, error) {
	logger := logging.GetLogger("handlers.sysctl")

	var (
		writes    bool
		behaviors []types.Behavior
	)

	for _, token := range cfg.Args {
		switch {
		case token == "-w" || token == "--write":
			writes = true

		case strings.HasPrefix(token, "-"):
			return nil, writeOnly().WithDetail("option", token)

		default:
			key, value, ok := strings.Cut(token, "=")
			if !ok {
				logger.Debug().Str("token", token).Msg("Ignoring token without a value")
				continue
			}
			if cfg.Now {
				behaviors = append(behaviors, types.Run{
					Cmd: []string{constants.SysctlBinary, "-w", key + "=" + value},
				})
			}
			behaviors = append(behaviors, types.AppendLineToFile{
				Filename: constants.SysctlConfPath,
				Line:     fmt.Sprintf("%s = %s", key, value),
			})
		}
	}

	if !writes {
		return nil, writeOnly()
	}

	logger.Debug().Int("behaviors", len(behaviors)).Bool("now", cfg.Now).Msg("Parsed sysctl arguments")
	return behaviors, nil
}

func writeOnly() *errors.PermlyError {
	return errors.New(errors.ErrUnsupportedFlag, "sysctl only works with -w/--write")
}
