package types

import (
	"context"
	"io"
	"io/fs"
)

// File is the writable handle returned by FS.OpenFile
type File interface {
	io.WriteCloser
}

// FS is the filesystem interface required for permly operations
type FS interface {
	// OpenFile opens a file with the given flags, as os.OpenFile does
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}

// Runner spawns an external program and waits for it.
//
// A non-zero exit must be reported with an error implementing
// interface{ ExitCode() int }, as *exec.ExitError does; a negative code
// means the process ended without one (e.g. killed by a signal).
type Runner interface {
	Run(ctx context.Context, argv []string) error
}

// EnvLookup resolves an environment variable, as os.LookupEnv does
type EnvLookup func(name string) (string, bool)

// PathResolver turns a user supplied path into an absolute, symlink-free one
type PathResolver func(path string) (string, error)

// ExecEnv bundles the capabilities a Behavior executes against
type ExecEnv struct {
	FS     FS
	Runner Runner
}

// ParseEnv bundles the ambient lookups a subcommand parser may consult
type ParseEnv struct {
	LookupEnv EnvLookup
	Resolve   PathResolver
}

// Parser turns a subcommand's raw arguments into behaviors, in order
type Parser func(cfg Config, env ParseEnv) ([]Behavior, error)
