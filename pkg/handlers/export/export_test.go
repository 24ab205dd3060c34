// pkg/handlers/export/export_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: stub environment lookup
// PURPOSE: Verify export lines, environment fallback and the --now rejection

package export

import (
	"testing"

	"github.com/arthur-debert/permly/pkg/errors"
	"github.com/arthur-debert/permly/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) types.EnvLookup {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func profile(line string) types.AppendLineToFile {
	return types.AppendLineToFile{Filename: "~/.profile", Line: line}
}

func TestParse(t *testing.T) {
	env := types.ParseEnv{LookupEnv: envOf(map[string]string{
		"EDITOR": "vim",
		"EMPTY":  "",
	})}

	tests := []struct {
		name string
		args []string
		want []types.Behavior
	}{
		{
			name: "key value",
			args: []string{"GOPATH=/opt/go"},
			want: []types.Behavior{profile("export GOPATH='/opt/go'")},
		},
		{
			name: "splits at first equals sign",
			args: []string{"OPTS=a=b"},
			want: []types.Behavior{profile("export OPTS='a=b'")},
		},
		{
			name: "empty value",
			args: []string{"X="},
			want: []types.Behavior{profile("export X=''")},
		},
		{
			name: "value is not escaped",
			args: []string{"Q=it's"},
			want: []types.Behavior{profile("export Q='it's'")},
		},
		{
			name: "bare name from environment",
			args: []string{"EDITOR"},
			want: []types.Behavior{profile("export EDITOR='vim'")},
		},
		{
			name: "set but empty variable counts as found",
			args: []string{"EMPTY"},
			want: []types.Behavior{profile("export EMPTY=''")},
		},
		{
			name: "unset variable is a no-op",
			args: []string{"NOPE_NOT_SET"},
			want: []types.Behavior{types.NoOperationReason{
				Reason: "variable `NOPE_NOT_SET` is not found in current environment",
			}},
		},
		{
			name: "mixed tokens keep order",
			args: []string{"A=1", "MISSING", "EDITOR"},
			want: []types.Behavior{
				profile("export A='1'"),
				types.NoOperationReason{Reason: "variable `MISSING` is not found in current environment"},
				profile("export EDITOR='vim'"),
			},
		},
		{
			name: "no tokens",
			args: nil,
			want: []types.Behavior{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := types.Config{}.WithCommand(Name, tt.args...)
			got, err := Parse(cfg, env)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsNow(t *testing.T) {
	for _, args := range [][]string{nil, {"A=1"}, {"--bogus"}} {
		cfg := types.Config{Now: true}.WithCommand(Name, args...)
		got, err := Parse(cfg, types.ParseEnv{})

		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedFlag))
		assert.Equal(t, "export doesn't support --now", errors.Message(err))
	}
}

func TestParseUsesProcessEnvironmentByDefault(t *testing.T) {
	t.Setenv("PERMLY_EXPORT_TEST", "from-process")

	cfg := types.Config{}.WithCommand(Name, "PERMLY_EXPORT_TEST")
	got, err := Parse(cfg, types.ParseEnv{})

	require.NoError(t, err)
	assert.Equal(t, []types.Behavior{profile("export PERMLY_EXPORT_TEST='from-process'")}, got)
}
