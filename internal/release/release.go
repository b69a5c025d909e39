// Package release implements the release preparation workflow: preflight,
// version resolution and validation, manifest and changelog rewriting, the
// release commit, the signed annotated tag, and the final summary. The
// workflow is strictly sequential; each step either succeeds and advances or
// fails and terminates the run. There is no rollback of partial side effects.
package release

import (
	"context"
	"io"
	"os"

	"github.com/relprep/relprep/internal/config"
	"github.com/relprep/relprep/internal/execx"
	"github.com/relprep/relprep/internal/git"
	"github.com/relprep/relprep/internal/manifest"
	"github.com/relprep/relprep/internal/progress"
)

// GitOps covers the mutating git operations of a release run.
type GitOps interface {
	UncommittedFiles(ctx context.Context) ([]string, error)
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	CreateTag(ctx context.Context, name, message string, signed bool) error
}

// RepoReader covers the read-only repository queries of a release run.
type RepoReader interface {
	LatestTag() (string, error)
	TagExists(name string) (bool, error)
	HeadSummary() (string, error)
	TagAnnotation(name string) (string, error)
	RemoteURL(name string) (string, error)
}

// Changelog is the client of the external changelog generator.
type Changelog interface {
	Bin() string
	SuggestVersion(ctx context.Context) (string, error)
	RegenerateChangelog(ctx context.Context, tagName, outputPath string) error
	TagDescription(ctx context.Context, tagName string) (string, error)
}

// Runner executes the release preparation workflow.
type Runner struct {
	cfg      *config.Configuration
	git      GitOps
	repo     RepoReader
	cliff    Changelog
	manifest manifest.Setter

	in       io.Reader
	out      io.Writer
	progress *progress.Indicator

	// lookPath reports whether an external binary is installed.
	lookPath func(name string) bool

	dryRun bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithInput sets the reader used for the confirmation prompt (default os.Stdin).
func WithInput(in io.Reader) Option {
	return func(r *Runner) { r.in = in }
}

// WithOutput sets the writer for workflow output (default os.Stdout).
func WithOutput(out io.Writer) Option {
	return func(r *Runner) { r.out = out }
}

// WithProgress sets the progress indicator. May be nil for plain output.
func WithProgress(p *progress.Indicator) Option {
	return func(r *Runner) { r.progress = p }
}

// WithLookPath overrides binary lookup (for testing).
func WithLookPath(fn func(string) bool) Option {
	return func(r *Runner) { r.lookPath = fn }
}

// WithDryRun makes the run print planned mutations instead of performing them.
func WithDryRun(dryRun bool) Option {
	return func(r *Runner) { r.dryRun = dryRun }
}

// New creates a Runner from the external collaborators.
func New(cfg *config.Configuration, gitOps GitOps, repo RepoReader, changelog Changelog, setter manifest.Setter, opts ...Option) *Runner {
	r := &Runner{
		cfg:      cfg,
		git:      gitOps,
		repo:     repo,
		cliff:    changelog,
		manifest: setter,
		in:       os.Stdin,
		out:      os.Stdout,
		lookPath: execx.LookPath,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// repoReader adapts the package-level git queries to the RepoReader
// interface for a fixed repository path.
type repoReader struct {
	path string
}

// NewRepoReader returns the production RepoReader for the repository at path.
func NewRepoReader(path string) RepoReader {
	return &repoReader{path: path}
}

func (r *repoReader) LatestTag() (string, error) {
	return git.LatestTag(r.path)
}

func (r *repoReader) TagExists(name string) (bool, error) {
	return git.TagExists(r.path, name)
}

func (r *repoReader) HeadSummary() (string, error) {
	return git.HeadSummary(r.path)
}

func (r *repoReader) TagAnnotation(name string) (string, error) {
	return git.TagAnnotation(r.path, name)
}

func (r *repoReader) RemoteURL(name string) (string, error) {
	return git.RemoteURL(r.path, name)
}
