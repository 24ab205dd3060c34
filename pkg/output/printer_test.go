package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/permly/pkg/config"
	"github.com/arthur-debert/permly/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewPlain(t *testing.T) {
	tests := []struct {
		name     string
		behavior types.Behavior
		want     string
	}{
		{
			name:     "run",
			behavior: types.Run{Cmd: []string{"sysctl", "-w", "vm.swappiness=10"}},
			want:     "sayperm: will run: sysctl -w vm.swappiness=10\n",
		},
		{
			name:     "append",
			behavior: types.AppendLineToFile{Filename: "~/.profile", Line: "export EDITOR='vim'"},
			want:     "sayperm: append to `~/.profile`: export EDITOR='vim'\n",
		},
		{
			name:     "noop",
			behavior: types.NoOperationReason{Reason: "variable `X` is not found in current environment"},
			want:     "sayperm: skipping: variable `X` is not found in current environment\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewPrinter(&buf, false).Preview(tt.behavior))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPreviewStyledKeepsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, true).Preview(types.NoOperationReason{Reason: "nothing"}))

	assert.Contains(t, buf.String(), "sayperm:")
	assert.Contains(t, buf.String(), "skipping: nothing")
}

func TestMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).Message("No command is specified!"))
	assert.Equal(t, "No command is specified!\n", buf.String())
}

func TestConfigureColorOnRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.False(t, ConfigureColor(config.ColorAuto, f))
	assert.False(t, ConfigureColor(config.ColorNever, f))
	assert.True(t, ConfigureColor(config.ColorAlways, f))
}
