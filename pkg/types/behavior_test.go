// pkg/types/behavior_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs, fake Runner
// PURPOSE: Verify execution status codes and preview rendering of each behavior

package types_test

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"testing"

	"github.com/arthur-debert/permly/pkg/errors"
	"github.com/arthur-debert/permly/pkg/filesystem"
	"github.com/arthur-debert/permly/pkg/testutil"
	"github.com/arthur-debert/permly/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenFile accepts the open but fails every write
type brokenFile struct{}

func (brokenFile) Write([]byte) (int, error) { return 0, stderrors.New("disk full") }
func (brokenFile) Close() error              { return nil }

type brokenFS struct{ types.FS }

func (brokenFS) OpenFile(string, int, fs.FileMode) (types.File, error) { return brokenFile{}, nil }

func TestRunExecute(t *testing.T) {
	tests := []struct {
		name     string
		runErr   error
		wantCode int
		wantErr  errors.ErrorCode
	}{
		{"success", nil, 0, ""},
		{"child exit status", testutil.ExitStatus(3), 3, errors.ErrCommandFailed},
		{"killed by signal", testutil.ExitStatus(-1), 130, errors.ErrCommandKilled},
		{"cannot start", stderrors.New("executable file not found"), 127, errors.ErrCommandStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testutil.FailWith(tt.runErr)
			b := types.Run{Cmd: []string{"mount", "/dev/sdb1", "/mnt"}}

			err := b.Execute(context.Background(), types.ExecEnv{Runner: runner})

			assert.Equal(t, [][]string{{"mount", "/dev/sdb1", "/mnt"}}, runner.Calls())
			assert.Equal(t, tt.wantCode, errors.ExitCode(err))
			if tt.wantErr != "" {
				assert.True(t, errors.IsErrorCode(err, tt.wantErr))
			}
		})
	}
}

func TestRunExecuteRejectsEmptyCommand(t *testing.T) {
	runner := &testutil.MockRunner{}
	err := types.Run{}.Execute(context.Background(), types.ExecEnv{Runner: runner})

	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Empty(t, runner.Calls())
}

func TestNewRun(t *testing.T) {
	argv := []string{"sysctl", "-w", "a=b"}
	r, err := types.NewRun(argv...)
	require.NoError(t, err)
	argv[2] = "c=d"
	assert.Equal(t, []string{"sysctl", "-w", "a=b"}, r.Cmd)

	_, err = types.NewRun()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestAppendLineToFileExecute(t *testing.T) {
	memFS := testutil.NewMemoryFS(t, map[string]string{"/etc/fstab": "# static\n"})

	b := types.AppendLineToFile{Filename: "/etc/fstab", Line: "/dev/sdb1\t/mnt\text4\t"}
	require.NoError(t, b.Execute(context.Background(), types.ExecEnv{FS: memFS}))

	assert.Equal(t, "# static\n/dev/sdb1\t/mnt\text4\t\n", testutil.ReadFile(t, memFS, "/etc/fstab"))
}

func TestAppendLineToFileExpandsHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	memFS := testutil.NewMemoryFS(t, map[string]string{"/home/tester/.profile": ""})

	b := types.AppendLineToFile{Filename: "~/.profile", Line: "export EDITOR='vim'"}
	require.NoError(t, b.Execute(context.Background(), types.ExecEnv{FS: memFS}))

	assert.Equal(t, "export EDITOR='vim'\n", testutil.ReadFile(t, memFS, "/home/tester/.profile"))
}

func TestAppendLineToFileMissingTarget(t *testing.T) {
	memFS := filesystem.NewMemoryFS()

	b := types.AppendLineToFile{Filename: "/etc/sysctl.d/99-permly.conf", Line: "vm.swappiness = 10"}
	err := b.Execute(context.Background(), types.ExecEnv{FS: memFS})

	require.Error(t, err)
	assert.Equal(t, 128, errors.ExitCode(err))
	assert.True(t, errors.IsErrorCode(err, errors.ErrAppendOpen))

	_, statErr := memFS.Stat("/etc/sysctl.d/99-permly.conf")
	assert.True(t, os.IsNotExist(statErr), "append must not create the target")
}

func TestAppendLineToFileWriteFailure(t *testing.T) {
	b := types.AppendLineToFile{Filename: "/etc/fstab", Line: "x"}
	err := b.Execute(context.Background(), types.ExecEnv{FS: brokenFS{}})

	require.Error(t, err)
	assert.Equal(t, 129, errors.ExitCode(err))
	assert.True(t, errors.IsErrorCode(err, errors.ErrAppendWrite))
}

func TestNoOperationReasonExecute(t *testing.T) {
	b := types.NoOperationReason{Reason: "nothing to do"}
	assert.NoError(t, b.Execute(context.Background(), types.ExecEnv{}))
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		behavior types.Behavior
		want     string
		kind     types.BehaviorKind
	}{
		{
			name:     "run",
			behavior: types.Run{Cmd: []string{"mount", "/a", "/b", "-t", "ext4"}},
			want:     "will run: mount /a /b -t ext4",
			kind:     types.KindRun,
		},
		{
			name:     "run with quoting",
			behavior: types.Run{Cmd: []string{"echo", "", "it's"}},
			want:     `will run: echo '' 'it'\''s'`,
			kind:     types.KindRun,
		},
		{
			name:     "append",
			behavior: types.AppendLineToFile{Filename: "/etc/sysctl.d/99-permly.conf", Line: "net.ipv4.ip_forward = 1"},
			want:     "append to `/etc/sysctl.d/99-permly.conf`: net.ipv4.ip_forward = 1",
			kind:     types.KindAppendLineToFile,
		},
		{
			name:     "noop",
			behavior: types.NoOperationReason{Reason: "variable `FOO` is not found in current environment"},
			want:     "skipping: variable `FOO` is not found in current environment",
			kind:     types.KindNoOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.behavior.Render())
			assert.Equal(t, tt.kind, tt.behavior.Kind())
		})
	}
}

func TestConfigWithCommand(t *testing.T) {
	base := types.Config{DryRun: true}
	args := []string{"-t", "ext4"}

	cfg := base.WithCommand("mount", args...)
	args[0] = "changed"

	assert.True(t, cfg.HasCmd)
	assert.Equal(t, "mount", cfg.Cmd)
	assert.Equal(t, []string{"-t", "ext4"}, cfg.Args)
	assert.True(t, cfg.DryRun)
	assert.False(t, base.HasCmd)
}
