package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/permly/pkg/filesystem"
	"github.com/arthur-debert/permly/pkg/types"
)

// NewMemoryFS returns an in-memory FS holding the given files (path to content)
func NewMemoryFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()

	fs := filesystem.NewMemoryFS()
	for path, content := range files {
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create parent of %s: %v", path, err)
		}
		if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to seed %s: %v", path, err)
		}
	}
	return fs
}

// ReadFile returns the content of path in fs, failing the test if it is missing
func ReadFile(t *testing.T, fs types.FS, path string) string {
	t.Helper()

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// CanonicalTempDir returns a fresh temporary directory with symlinks
// resolved, so it compares equal to canonicalized paths (on macOS /var is a
// symlink).
func CanonicalTempDir(t *testing.T, subdirs ...string) string {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	for _, sub := range subdirs {
		if err := os.MkdirAll(filepath.Join(root, sub), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", sub, err)
		}
	}
	return root
}
