// Package manifest rewrites the project manifest's version field through the
// project's own package manager. The package manager is an external
// collaborator: relprep never parses or edits manifest files itself.
package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/relprep/relprep/internal/execx"
)

// Supported package manager tools.
const (
	ToolCargo = "cargo"
	ToolNpm   = "npm"
	ToolNone  = "none"
)

// Setter writes a bare version (no "v" prefix) into the project manifest.
type Setter interface {
	// SetVersion rewrites the manifest's version field in place.
	SetVersion(ctx context.Context, version string) error
	// Describe returns the invocation for display, e.g. in dry-run output.
	Describe(version string) string
}

// NewSetter returns the Setter for the configured tool name. extraArgs are
// appended to the version-set invocation (e.g. a cargo package selector).
func NewSetter(runner execx.Runner, tool, dir string, extraArgs ...string) (Setter, error) {
	switch tool {
	case ToolCargo:
		return &cargoSetter{runner: runner, dir: dir, extra: extraArgs}, nil
	case ToolNpm:
		return &npmSetter{runner: runner, dir: dir, extra: extraArgs}, nil
	case ToolNone, "":
		return noopSetter{}, nil
	default:
		return nil, fmt.Errorf("unknown manifest tool %q (valid: cargo, npm, none)", tool)
	}
}

// cargoSetter uses the cargo-edit set-version subcommand to rewrite
// Cargo.toml (and Cargo.lock) in place.
type cargoSetter struct {
	runner execx.Runner
	dir    string
	extra  []string
}

func (s *cargoSetter) SetVersion(ctx context.Context, version string) error {
	_, err := s.runner.Run(ctx, execx.Command{
		Name: "cargo",
		Args: append([]string{"set-version", version}, s.extra...),
		Dir:  s.dir,
	})
	if err != nil {
		return fmt.Errorf("setting Cargo.toml version: %w", err)
	}
	return nil
}

func (s *cargoSetter) Describe(version string) string {
	return strings.Join(append([]string{"cargo", "set-version", version}, s.extra...), " ")
}

// npmSetter rewrites package.json via npm version. Tagging and committing
// stay with relprep, so npm's own git integration is disabled.
type npmSetter struct {
	runner execx.Runner
	dir    string
	extra  []string
}

func (s *npmSetter) SetVersion(ctx context.Context, version string) error {
	args := []string{"version", version, "--no-git-tag-version", "--allow-same-version"}
	_, err := s.runner.Run(ctx, execx.Command{
		Name: "npm",
		Args: append(args, s.extra...),
		Dir:  s.dir,
	})
	if err != nil {
		return fmt.Errorf("setting package.json version: %w", err)
	}
	return nil
}

func (s *npmSetter) Describe(version string) string {
	return strings.Join(append([]string{"npm", "version", version, "--no-git-tag-version"}, s.extra...), " ")
}

// noopSetter is used for projects without a managed manifest.
type noopSetter struct{}

func (noopSetter) SetVersion(context.Context, string) error { return nil }

func (noopSetter) Describe(string) string { return "(no manifest configured)" }
