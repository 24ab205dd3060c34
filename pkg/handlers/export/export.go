package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/permly/pkg/constants"
	"github.com/arthur-debert/permly/pkg/errors"
	"github.com/arthur-debert/permly/pkg/logging"
	"github.com/arthur-debert/permly/pkg/types"
)

// Name is the subcommand this parser serves
const Name = "export"

// Parse implements types.Parser for the export subcommand. Each token is
// either KEY=VALUE or a bare variable name taken from the environment.
func Parse(cfg types.Config, env types.ParseEnv) ([]types.Behavior, error) {
	if cfg.Now {
		return nil, errors.New(errors.ErrUnsupportedFlag, "export doesn't support --now").
			WithDetail("command", Name)
	}

	logger := logging.GetLogger("handlers.export")

	lookup := env.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	behaviors := make([]types.Behavior, 0, len(cfg.Args))
	for _, token := range cfg.Args {
		if key, value, ok := strings.Cut(token, "="); ok {
			behaviors = append(behaviors, profileLine(key, value))
			continue
		}

		value, found := lookup(token)
		if !found {
			logger.Debug().Str("variable", token).Msg("Variable not set, skipping")
			behaviors = append(behaviors, types.NoOperationReason{
				Reason: fmt.Sprintf("variable `%s` is not found in current environment", token),
			})
			continue
		}
		behaviors = append(behaviors, profileLine(token, value))
	}

	logger.Debug().Int("behaviors", len(behaviors)).Msg("Parsed export arguments")
	return behaviors, nil
}

// profileLine does not escape value; a single quote inside it ends up
// verbatim in the profile.
func profileLine(key, value string) types.AppendLineToFile {
	return types.AppendLineToFile{
		Filename: constants.ProfilePath,
		Line:     fmt.Sprintf("export %s='%s'", key, value),
	}
}
