package testutil

import (
	"context"
	"sync"
)

// ExitStatus is an error reporting a child exit status. Negative values
// stand for a process that ended without one.
type ExitStatus int

func (e ExitStatus) Error() string { return "exit status" }

// ExitCode returns the status, as *exec.ExitError does
func (e ExitStatus) ExitCode() int { return int(e) }

// MockRunner is a mock implementation of the types.Runner interface for testing.
type MockRunner struct {
	// RunFunc decides the outcome of each call; nil means success
	RunFunc func(argv []string) error

	mu    sync.Mutex
	calls [][]string
}

// FailWith returns a runner that answers every call with err
func FailWith(err error) *MockRunner {
	return &MockRunner{RunFunc: func([]string) error { return err }}
}

// Run records argv and runs the mock's function.
func (m *MockRunner) Run(_ context.Context, argv []string) error {
	m.mu.Lock()
	m.calls = append(m.calls, append([]string(nil), argv...))
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(argv)
	}
	return nil
}

// Calls returns every argv received, in order
func (m *MockRunner) Calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.calls...)
}
