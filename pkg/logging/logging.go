package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/permly/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// Quiet until SetupLogger runs; settings are loaded before it.
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

// Options controls logger setup
type Options struct {
	// Verbosity is the number of -v flags given; it wins over Level when > 0
	Verbosity int

	// Level is the configured level name used when Verbosity is 0
	Level string

	// LogFile overrides the default log file location
	LogFile string

	// Console receives human readable output, os.Stderr when nil
	Console io.Writer
}

// SetupLogger configures the global logger.
// It sets up dual output to both console and a log file
func SetupLogger(opts Options) {
	zerolog.SetGlobalLevel(levelFor(opts.Verbosity, opts.Level))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	// Configure console output with pretty printing
	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    false,
	}

	writers := []io.Writer{consoleWriter}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = paths.New().LogFilePath()
	}
	logFileHandle, err := setupLogFile(logFile)
	if err == nil {
		writers = append(writers, logFileHandle)
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	// If we couldn't create the log file, log the error now with the new logger
	if err != nil {
		log.Debug().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	// Add caller information for debug and trace levels
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// levelFor maps -v counts to levels; without -v the configured level applies
func levelFor(verbosity int, configured string) zerolog.Level {
	switch {
	case verbosity <= 0:
		if level, err := zerolog.ParseLevel(strings.ToLower(configured)); err == nil && configured != "" {
			return level
		}
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
