package mount

import (
	"strings"

	"github.com/arthur-debert/permly/pkg/constants"
	"github.com/arthur-debert/permly/pkg/errors"
	"github.com/arthur-debert/permly/pkg/logging"
	"github.com/arthur-debert/permly/pkg/paths"
	"github.com/arthur-debert/permly/pkg/types"
)

// Name is the subcommand this parser serves
const Name = "mount"

const (
	BindFSType     = "none"
	BindOption     = "bind"
	ReadOnlyOption = "ro"
)

// entry accumulates what the token walk has seen so far
type entry struct {
	device     string
	mountpoint string
	fsType     string
	options    []string

	hasDevice     bool
	hasMountpoint bool
	hasFSType     bool
}

// Parse implements types.Parser for the mount subcommand
func Parse(cfg types.Config, env types.ParseEnv) ([]types.Behavior, error) {
	logger := logging.GetLogger("handlers.mount")

	e, err := walk(cfg.Args)
	if err != nil {
		return nil, err
	}

	if !e.hasDevice {
		return nil, errors.New(errors.ErrMissingArgument, "No device")
	}
	if !e.hasMountpoint {
		return nil, errors.New(errors.ErrMissingArgument, "No mountpoint")
	}
	if !e.hasFSType {
		return nil, errors.New(errors.ErrMissingArgument, "No fs_type")
	}

	resolve := env.Resolve
	if resolve == nil {
		resolve = paths.Canonicalize
	}
	device, err := resolvePath(resolve, e.device, "device")
	if err != nil {
		return nil, err
	}
	mountpoint, err := resolvePath(resolve, e.mountpoint, "mountpoint")
	if err != nil {
		return nil, err
	}
	options := strings.Join(e.options, ",")

	logger.Debug().
		Str("device", device).
		Str("mountpoint", mountpoint).
		Str("fsType", e.fsType).
		Str("options", options).
		Bool("now", cfg.Now).
		Msg("Parsed mount entry")

	var behaviors []types.Behavior
	if cfg.Now {
		argv := []string{constants.MountBinary, device, mountpoint, "-t", e.fsType}
		if options != "" {
			argv = append(argv, "-o", options)
		}
		behaviors = append(behaviors, types.Run{Cmd: argv})
	}

	behaviors = append(behaviors, types.AppendLineToFile{
		Filename: constants.FstabPath,
		Line:     strings.Join([]string{device, mountpoint, e.fsType, options}, "\t"),
	})
	return behaviors, nil
}

// walk consumes the tokens with an explicit cursor; value-taking options
// advance it past their argument.
func walk(args []string) (entry, error) {
	var e entry

	for i := 0; i < len(args); i++ {
		token := args[i]

		switch token {
		case "-o", "--options":
			if i+1 >= len(args) {
				return e, missingValue(token)
			}
			i++
			e.options = append(e.options, args[i])

		case "-t", "--types":
			if e.hasFSType {
				return e, multipleTypes()
			}
			if i+1 >= len(args) {
				return e, missingValue(token)
			}
			i++
			e.fsType = args[i]
			e.hasFSType = true

		case "-B", "--bind":
			if e.hasFSType {
				return e, multipleTypes()
			}
			e.fsType = BindFSType
			e.hasFSType = true
			e.options = append(e.options, BindOption)

		case "-r", "--readonly":
			e.options = append(e.options, ReadOnlyOption)

		default:
			if strings.HasPrefix(token, "-") {
				return e, errors.Newf(errors.ErrUnknownOption, "mount: unknown option -- '%s'", token).
					WithDetail("option", token)
			}
			switch {
			case !e.hasDevice:
				e.device = token
				e.hasDevice = true
			case !e.hasMountpoint:
				e.mountpoint = token
				e.hasMountpoint = true
			default:
				return e, errors.New(errors.ErrTooManyArguments, "Too much arguments").
					WithDetail("argument", token)
			}
		}
	}

	return e, nil
}

func resolvePath(resolve types.PathResolver, path, role string) (string, error) {
	resolved, err := resolve(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve, "no such dir: %s", path).
			WithDetail("path", path).
			WithDetail("role", role)
	}
	return resolved, nil
}

func missingValue(option string) error {
	return errors.Newf(errors.ErrMissingArgument, "mount: option requires an argument -- '%s'", option).
		WithDetail("option", option)
}

func multipleTypes() error {
	return errors.New(errors.ErrConflictingOptions, "mount: multiple --types")
}
