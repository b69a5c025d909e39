package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/relprep/relprep/internal/execx"
)

// CLI wraps the git command-line tool for the mutating operations of a
// release run. Read-only queries live in git.go on top of go-git; staging,
// committing, and tag signing go through the real git binary so the
// operator's hooks and signing configuration apply.
type CLI struct {
	runner execx.Runner
	dir    string
}

// NewCLI creates a git CLI wrapper operating in the given directory.
func NewCLI(runner execx.Runner, dir string) *CLI {
	return &CLI{runner: runner, dir: dir}
}

// UncommittedFiles returns the paths with pending changes, parsed from
// 'git status --porcelain'. An empty slice means the tree is clean.
func (c *CLI) UncommittedFiles(ctx context.Context) ([]string, error) {
	result, err := c.run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("checking working tree status: %w", err)
	}
	return parseStatusOutput(result.Stdout), nil
}

// StageAll stages every change in the working tree.
func (c *CLI) StageAll(ctx context.Context) error {
	if _, err := c.run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("staging changes: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message from the staged changes.
func (c *CLI) Commit(ctx context.Context, message string) error {
	if _, err := c.run(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("creating commit: %w", err)
	}
	return nil
}

// CreateTag creates an annotated tag carrying the given message.
// When signed is true the tag is GPG-signed with the operator's
// configured key.
func (c *CLI) CreateTag(ctx context.Context, name, message string, signed bool) error {
	args := []string{"tag", "-a"}
	if signed {
		args = []string{"tag", "-s"}
	}
	args = append(args, name, "-m", message)

	if _, err := c.run(ctx, args...); err != nil {
		return fmt.Errorf("creating tag %s: %w", name, err)
	}
	return nil
}

func (c *CLI) run(ctx context.Context, args ...string) (execx.Result, error) {
	logDebug("[git] running: git %s", strings.Join(args, " "))
	return c.runner.Run(ctx, execx.Command{
		Name: "git",
		Args: args,
		Dir:  c.dir,
	})
}

// parseStatusOutput extracts file paths from git status --porcelain output.
// Each line is in format "XY filename" where XY is a 2-character status code.
// The format is exactly: 2 status chars + 1 space + filename.
func parseStatusOutput(output string) []string {
	lines := strings.Split(output, "\n")
	files := []string{}

	for _, line := range lines {
		// Don't trim leading spaces - they're part of the status code
		if len(line) < 4 {
			continue
		}
		filename := extractFilename(line[3:])
		if filename != "" {
			files = append(files, filename)
		}
	}

	return files
}

// extractFilename handles both regular filenames and rename format.
func extractFilename(raw string) string {
	// Handle rename format: "old -> new"
	if _, after, found := strings.Cut(raw, " -> "); found {
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(raw)
}
