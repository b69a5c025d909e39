// Package execx provides a small abstraction over os/exec for invoking the
// external collaborators of a release run (git, the changelog generator, the
// package manager). The Runner interface allows tests to substitute a mock
// and assert on the exact invocations without spawning processes.
package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Command describes a single external tool invocation.
type Command struct {
	// Name is the binary to invoke (resolved via PATH).
	Name string
	// Args are the command-line arguments, excluding the binary name.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds extra environment entries in KEY=VALUE form, appended to
	// the inherited environment.
	Env []string
}

// String returns the command in a copy-pasteable form for display.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result captures the outcome of a completed invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes external commands.
type Runner interface {
	// Run executes the command, blocking until it exits, and captures its
	// output. A non-zero exit status is returned as an error alongside the
	// Result so callers can surface the tool's own diagnostics.
	Run(ctx context.Context, cmd Command) (Result, error)
}

// SystemRunner is the production Runner backed by os/exec.
type SystemRunner struct{}

// NewSystemRunner returns a Runner that executes real processes.
func NewSystemRunner() *SystemRunner {
	return &SystemRunner{}
}

// Run implements Runner.
func (r *SystemRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return result, nil
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		return result, fmt.Errorf("%s exited with status %d: %s",
			cmd.Name, result.ExitCode, firstDiagnosticLine(result.Stderr))
	default:
		result.ExitCode = -1
		return result, fmt.Errorf("running %s: %w", cmd.Name, err)
	}
}

// LookPath reports whether the named binary can be resolved via PATH.
func LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// firstDiagnosticLine extracts the first non-empty stderr line for error
// messages. The full output stays available on the Result.
func firstDiagnosticLine(stderr string) string {
	for _, line := range strings.Split(stderr, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return "no diagnostic output"
}
