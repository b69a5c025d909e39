package cli

import "github.com/relprep/relprep/internal/errors"

// Exit codes for the relprep CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates the release was prepared successfully.
	ExitSuccess = 0

	// ExitReleaseBlocked indicates a dirty working tree, a declined
	// confirmation, or an invalid version tag. Nothing was mutated.
	ExitReleaseBlocked = 1

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 2

	// ExitConfigError indicates invalid or unloadable configuration.
	ExitConfigError = 3

	// ExitExternalTool indicates a failed external tool invocation
	// (git, changelog generator, package manager).
	ExitExternalTool = 4
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	cliErr := errors.AsCLIError(err)
	if cliErr == nil {
		// Uncategorized errors surface only from cobra's own flag and
		// argument parsing; everything internal carries a category.
		return ExitInvalidArguments
	}

	switch cliErr.Category {
	case errors.Argument:
		return ExitInvalidArguments
	case errors.Configuration:
		return ExitConfigError
	case errors.External:
		return ExitExternalTool
	default:
		// Precondition, Validation, Cancelled: blocked before mutation.
		return ExitReleaseBlocked
	}
}
