package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the relprep CLI.
// These templates ensure consistent, actionable error messages.

// DirtyWorkingTree creates an error for a working tree with pending changes.
func DirtyWorkingTree(files []string) *CLIError {
	message := "working tree has uncommitted changes"
	if len(files) > 0 {
		message = fmt.Sprintf("working tree has uncommitted changes (%s)", strings.Join(files, ", "))
	}
	return NewPreconditionError(
		message,
		"Commit or stash your changes before preparing a release",
		"Review pending changes with: git status",
	)
}

// InvalidVersionTag creates an error for a version tag that does not match
// the required pattern.
func InvalidVersionTag(provided, pattern string) *CLIError {
	return NewValidationError(
		fmt.Sprintf("invalid version tag: %q (expected pattern: %s)", provided, pattern),
		"Use a tag of the form vMAJOR.MINOR.PATCH, e.g. v1.2.3",
	)
}

// VersionNotNewer creates an error for a candidate tag that does not advance
// past the latest existing tag.
func VersionNotNewer(candidate, latest string) *CLIError {
	return NewValidationError(
		fmt.Sprintf("version %s is not newer than the latest tag %s", candidate, latest),
		"Pick a version greater than "+latest,
		"List existing tags with: git tag --sort=-v:refname",
	)
}

// TagAlreadyExists creates an error for a tag that is already present.
func TagAlreadyExists(tag string) *CLIError {
	return NewValidationError(
		fmt.Sprintf("tag %s already exists", tag),
		"Pick a version that has not been released yet",
	)
}

// ReleaseDeclined creates an error for a declined confirmation prompt.
func ReleaseDeclined() *CLIError {
	return NewCancelledError("release cancelled by operator")
}

// ChangelogToolNotFound creates an error when the changelog generator is missing.
func ChangelogToolNotFound(bin string) *CLIError {
	return NewPreconditionError(
		fmt.Sprintf("%s command not found", bin),
		"Install git-cliff: cargo install git-cliff",
		"Or set cliff_bin in .relprep/config.yml to the correct binary",
		fmt.Sprintf("Verify installation with: %s --version", bin),
	)
}

// ChangelogToolFailed creates an error when the changelog generator fails.
func ChangelogToolFailed(err error) *CLIError {
	return WrapWithMessage(err, External,
		"changelog generator failed",
		"Check that a cliff.toml configuration exists if your repository needs one",
	)
}

// ManifestUpdateFailed creates an error when the package manager version-set fails.
func ManifestUpdateFailed(tool string, err error) *CLIError {
	return WrapWithMessage(err, External,
		fmt.Sprintf("updating manifest version via %s failed", tool),
		"The working tree may hold a partially applied release; inspect it with: git status",
	)
}

// GitCommandFailed creates an error when a git invocation fails.
func GitCommandFailed(args []string, err error) *CLIError {
	return WrapWithMessage(err, External,
		fmt.Sprintf("git %s failed", strings.Join(args, " ")),
	)
}

// TagSigningFailed creates an error when creating the signed tag fails.
// The release commit remains in history; the operator must resolve signing
// and re-tag manually.
func TagSigningFailed(tag string, err error) *CLIError {
	return WrapWithMessage(err, External,
		fmt.Sprintf("creating signed tag %s failed", tag),
		"Check that a signing key is configured: git config user.signingkey",
		fmt.Sprintf("The release commit was kept; re-tag with: git tag -s %s", tag),
	)
}

// NotAGitRepository creates an error when run outside a git repository.
func NotAGitRepository() *CLIError {
	return NewPreconditionError(
		"not a git repository",
		"Run relprep from inside the repository you want to release",
	)
}
