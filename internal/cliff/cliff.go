// Package cliff is a process-level client for the git-cliff changelog
// generator. relprep never generates changelog content itself; it invokes
// git-cliff for three queries and treats their output shapes as a versioned
// external contract: the JSON release context (version suggestion), the
// rendered changelog file, and the plain-text unreleased description.
package cliff

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/relprep/relprep/internal/execx"
)

// bodyTemplateEnv overrides the changelog.body template of the repository's
// cliff.toml for a single invocation.
const bodyTemplateEnv = "GIT_CLIFF__CHANGELOG__BODY"

// Client invokes the changelog generator binary.
type Client struct {
	runner execx.Runner
	bin    string
	dir    string
}

// NewClient creates a client for the given binary name (usually "git-cliff")
// operating in dir.
func NewClient(runner execx.Runner, bin, dir string) *Client {
	return &Client{runner: runner, bin: bin, dir: dir}
}

// Bin returns the configured binary name.
func (c *Client) Bin() string {
	return c.bin
}

// releaseContext mirrors the part of git-cliff's --context JSON output
// relprep depends on.
type releaseContext struct {
	Version *string `json:"version"`
}

// SuggestVersion asks the generator to compute the next version from the
// unreleased commit history. It runs with --bump --context and extracts the
// version field from the structured output.
func (c *Client) SuggestVersion(ctx context.Context) (string, error) {
	result, err := c.runner.Run(ctx, execx.Command{
		Name: c.bin,
		Args: []string{"--unreleased", "--bump", "--context"},
		Dir:  c.dir,
	})
	if err != nil {
		return "", fmt.Errorf("querying suggested version: %w", err)
	}

	version, err := parseContextVersion(result.Stdout)
	if err != nil {
		return "", err
	}
	return version, nil
}

// parseContextVersion extracts the bumped version from the JSON release
// context emitted by --context.
func parseContextVersion(output string) (string, error) {
	var releases []releaseContext
	if err := json.Unmarshal([]byte(output), &releases); err != nil {
		return "", fmt.Errorf("parsing release context: %w", err)
	}

	if len(releases) == 0 || releases[0].Version == nil || *releases[0].Version == "" {
		return "", fmt.Errorf("release context contains no suggested version")
	}

	return *releases[0].Version, nil
}

// RegenerateChangelog rewrites the changelog file from the full commit
// history, attributing unreleased commits to the given (not yet created) tag.
func (c *Client) RegenerateChangelog(ctx context.Context, tagName, outputPath string) error {
	_, err := c.runner.Run(ctx, execx.Command{
		Name: c.bin,
		Args: []string{"--tag", tagName, "--output", outputPath},
		Dir:  c.dir,
		Env:  []string{bodyTemplateEnv + "=" + ChangelogBodyTemplate()},
	})
	if err != nil {
		return fmt.Errorf("regenerating changelog: %w", err)
	}
	return nil
}

// TagDescription renders the unreleased commits as plain text for embedding
// in the tag annotation. Markup is stripped and pull-request links are
// normalized to bare #N references.
func (c *Client) TagDescription(ctx context.Context, tagName string) (string, error) {
	result, err := c.runner.Run(ctx, execx.Command{
		Name: c.bin,
		Args: []string{"--unreleased", "--tag", tagName, "--strip", "all"},
		Dir:  c.dir,
		Env:  []string{bodyTemplateEnv + "=" + TagMessageTemplate()},
	})
	if err != nil {
		return "", fmt.Errorf("rendering tag description: %w", err)
	}

	return strings.TrimSpace(RewritePullRequestLinks(result.Stdout)), nil
}
