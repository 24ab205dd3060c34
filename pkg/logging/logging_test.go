package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		level     string
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, "", zerolog.WarnLevel},
		{"configured level without -v", 0, "info", zerolog.InfoLevel},
		{"configured level is case insensitive", 0, "DEBUG", zerolog.DebugLevel},
		{"invalid configured level falls back to warn", 0, "chatty", zerolog.WarnLevel},
		{"info level", 1, "error", zerolog.InfoLevel},
		{"debug level", 2, "", zerolog.DebugLevel},
		{"trace level", 3, "", zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, "", zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)
			t.Setenv("PERMLY_STATE_DIR", "")

			var console bytes.Buffer
			SetupLogger(Options{Verbosity: tt.verbosity, Level: tt.level, Console: &console})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "permly", "permly.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file was not created at %s", logPath)
		})
	}
}

func TestSetupLoggerExplicitFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "custom.log")

	SetupLogger(Options{Verbosity: 1, LogFile: logPath, Console: &bytes.Buffer{}})
	log.Info().Msg("written to file")

	content, err := os.ReadFile(logPath)
	assert.NoError(t, err)
	assert.Contains(t, string(content), "written to file")
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("test-component")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"test-component"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogCommand("mount", []string{"/dev/sdb1", "/mnt/data"})

	output := buf.String()
	assert.Contains(t, output, "mount")
	assert.Contains(t, output, "/dev/sdb1")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	done := LogOperationStart(logger, "execute")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
