package main

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/permly/internal/version"
	"github.com/arthur-debert/permly/pkg/cli"
	"github.com/arthur-debert/permly/pkg/config"
	"github.com/arthur-debert/permly/pkg/dispatcher"
	"github.com/arthur-debert/permly/pkg/errors"
	"github.com/arthur-debert/permly/pkg/executor"
	"github.com/arthur-debert/permly/pkg/logging"
	"github.com/arthur-debert/permly/pkg/output"
	"github.com/arthur-debert/permly/pkg/paths"
	"github.com/arthur-debert/permly/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Deps are the capabilities the root command runs against. Zero values
// select the real system.
type Deps struct {
	FS        types.FS
	Runner    types.Runner
	LookupEnv types.EnvLookup
	Resolve   types.PathResolver
	Paths     paths.Paths
}

// NewRootCmd creates the permly command. Cobra only provides the shell:
// arguments reach RunE unparsed because the global options follow their
// own grammar (see pkg/cli).
func NewRootCmd(deps Deps) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:   "permly [-n|--dry-run] [--now] [-v] [--] <mount|export|sysctl> [args...]",
		Short: "Make runtime system changes persistent",
		Long:  helpMarkdown,

		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, deps)
		},
	}

	// Documentation only; the flags are scanned by cli.Scan.
	flags := rootCmd.Flags()
	flags.BoolP("dry-run", "n", false, "Print what would be done without doing it")
	flags.Bool("now", false, "Also apply the change to the running system")
	flags.CountP("verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.Bool("version", false, "Print version information")
	flags.Bool("help", false, "Show this help")

	rootCmd.SetUsageTemplate(usageTemplate)
	rootCmd.SetHelpFunc(helpFunc(isStyledWriter))

	return rootCmd
}

func run(cmd *cobra.Command, args []string, deps Deps) error {
	out := cmd.OutOrStdout()

	p := deps.Paths
	if p == nil {
		p = paths.New()
	}

	settings, settingsErr := config.Load(p)
	if settingsErr != nil {
		// still set up logging and output from the defaults to report it
		settings = config.Default()
	}

	cfg, flags, scanErr := cli.Scan(args)

	logFile := settings.Logging.File
	if logFile == "" {
		logFile = p.LogFilePath()
	}
	logging.SetupLogger(logging.Options{
		Verbosity: flags.Verbosity,
		Level:     settings.Logging.Level,
		LogFile:   logFile,
		Console:   cmd.ErrOrStderr(),
	})
	printer := output.NewPrinter(out, colorEnabled(settings.Output.Color, out))

	if settingsErr != nil {
		return report(printer, settingsErr)
	}
	if scanErr != nil {
		return report(printer, scanErr)
	}

	if flags.Help {
		return cmd.Help()
	}
	if flags.Version {
		_, err := fmt.Fprintln(out, version.String())
		return err
	}

	behaviors, err := dispatcher.Dispatch(cfg, dispatcher.Options{
		LookupEnv: deps.LookupEnv,
		Resolve:   deps.Resolve,
	})
	if err != nil {
		return report(printer, err)
	}

	exec := executor.New(executor.Options{
		DryRun:  cfg.DryRun,
		FS:      deps.FS,
		Runner:  deps.Runner,
		Printer: printer,
	})
	if err := exec.Execute(cmd.Context(), behaviors); err != nil {
		log.Error().
			Err(err).
			Int("exitCode", errors.ExitCode(err)).
			Msg(errors.Message(err))
		return err
	}
	return nil
}

// report prints a usage-level error for the user and returns it
func report(printer *output.Printer, err error) error {
	log.Debug().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Invocation rejected")
	if printErr := printer.Message(errors.Message(err)); printErr != nil {
		log.Debug().Err(printErr).Msg("Failed to print error message")
	}
	return err
}

func isStyledWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && output.IsTerminal(f)
}

func colorEnabled(mode string, w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return output.ConfigureColor(mode, f)
	}
	return false
}
