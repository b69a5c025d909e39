// Package testutil provides test utilities and helpers for relprep tests.
package testutil

import (
	"context"
	"sync"

	"github.com/relprep/relprep/internal/execx"
)

// MockRunner implements execx.Runner for tests. It records every invocation
// and answers from per-binary handlers, so tests can assert on the exact
// external commands a workflow issues without spawning processes.
type MockRunner struct {
	mu sync.Mutex

	// Calls holds every command passed to Run, in order.
	Calls []execx.Command

	// handlers maps a binary name to its scripted behavior.
	handlers map[string]func(execx.Command) (execx.Result, error)
}

// NewMockRunner creates a MockRunner where every command succeeds with empty
// output until a handler is registered.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		handlers: make(map[string]func(execx.Command) (execx.Result, error)),
	}
}

// Handle registers scripted behavior for all invocations of a binary.
func (m *MockRunner) Handle(name string, fn func(execx.Command) (execx.Result, error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[name] = fn
}

// HandleOutput registers a fixed stdout response for a binary.
func (m *MockRunner) HandleOutput(name, stdout string) {
	m.Handle(name, func(execx.Command) (execx.Result, error) {
		return execx.Result{Stdout: stdout}, nil
	})
}

// HandleError registers a fixed failure for a binary.
func (m *MockRunner) HandleError(name string, err error) {
	m.Handle(name, func(execx.Command) (execx.Result, error) {
		return execx.Result{ExitCode: 1}, err
	})
}

// Run implements execx.Runner.
func (m *MockRunner) Run(_ context.Context, cmd execx.Command) (execx.Result, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, cmd)
	handler := m.handlers[cmd.Name]
	m.mu.Unlock()

	if handler != nil {
		return handler(cmd)
	}
	return execx.Result{}, nil
}

// CallsFor returns the recorded invocations of a single binary.
func (m *MockRunner) CallsFor(name string) []execx.Command {
	m.mu.Lock()
	defer m.mu.Unlock()

	var calls []execx.Command
	for _, c := range m.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}
