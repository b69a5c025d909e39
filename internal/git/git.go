// Package git provides the repository operations relprep needs for a release:
// cleanliness checks, tag queries, remote URL resolution, staging, committing,
// and signed tagging. It uses the go-git library for read-only queries and
// falls back to the git CLI for mutations go-git cannot express faithfully
// (GPG-signed tags in particular rely on the operator's git configuration).
package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"golang.org/x/mod/semver"

	"github.com/relprep/relprep/internal/tag"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging. The logger function should format
// and output the message (similar to log.Printf signature).
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens the git repository containing path. It uses go-git's
// PlainOpenWithOptions with DetectDotGit enabled to traverse up the
// directory tree to find the repository root.
func openRepo(path string) (*gogit.Repository, error) {
	if path == "" {
		path = "."
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return repo, nil
}

// IsRepository checks whether path is inside a git repository.
func IsRepository(path string) bool {
	_, err := openRepo(path)
	result := err == nil
	logDebug("[git] IsRepository: %v", result)
	return result
}

// RemoteURL returns the first configured URL of the named remote.
func RemoteURL(path, name string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("looking up remote %q: %w", name, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no URL configured", name)
	}

	logDebug("[git] RemoteURL(%s): %s", name, urls[0])
	return urls[0], nil
}

// LatestTag returns the highest release tag in the repository under semantic
// version ordering, or empty string when no release tag exists. Tags that do
// not match the release tag pattern are ignored.
func LatestTag(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	iter, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("listing tags: %w", err)
	}

	latest := ""
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if !tag.IsValid(name) {
			return nil
		}
		if latest == "" || semver.Compare(name, latest) > 0 {
			latest = name
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("iterating tags: %w", err)
	}

	logDebug("[git] LatestTag: %q", latest)
	return latest, nil
}

// TagExists reports whether a tag with the given name is present.
func TagExists(path, name string) (bool, error) {
	repo, err := openRepo(path)
	if err != nil {
		return false, err
	}

	_, err = repo.Reference(plumbing.NewTagReferenceName(name), true)
	if err == nil {
		return true, nil
	}
	if err == plumbing.ErrReferenceNotFound {
		return false, nil
	}
	return false, fmt.Errorf("checking tag %q: %w", name, err)
}

// HeadSummary returns a one-line description of the latest commit:
// the abbreviated hash followed by the commit subject.
func HeadSummary(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("reading HEAD commit: %w", err)
	}

	return fmt.Sprintf("%s %s", head.Hash().String()[:7], commitSubject(commit.Message)), nil
}

// TagAnnotation returns the annotation message stored in a tag object.
// Returns empty string for lightweight tags.
func TagAnnotation(path, name string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	ref, err := repo.Reference(plumbing.NewTagReferenceName(name), true)
	if err != nil {
		return "", fmt.Errorf("looking up tag %q: %w", name, err)
	}

	obj, err := repo.TagObject(ref.Hash())
	if err == plumbing.ErrObjectNotFound {
		// Lightweight tag: the ref points straight at a commit.
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading tag object %q: %w", name, err)
	}

	return obj.Message, nil
}

// commitSubject extracts the first line of a commit message.
func commitSubject(message string) string {
	for i := 0; i < len(message); i++ {
		if message[i] == '\n' {
			return message[:i]
		}
	}
	return message
}
