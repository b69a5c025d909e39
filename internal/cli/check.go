package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relprep/relprep/internal/errors"
	"github.com/relprep/relprep/internal/execx"
	"github.com/relprep/relprep/internal/git"
	"github.com/relprep/relprep/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the repository is ready for a release",
	Long: `Run only the release preflight checks and report the result.

Checks that the current directory is a git repository, that the working
tree has no uncommitted changes, and that the required external tools
(git, the changelog generator) are installed. Nothing is mutated.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyDebugLogging(cmd)

	out := cmd.OutOrStdout()

	if !git.IsRepository(".") {
		return errors.NotAGitRepository()
	}
	output.PrintSuccess(out, "Inside a git repository")

	if !execx.LookPath("git") {
		return errors.NewPreconditionError("git command not found",
			"Install git and ensure it is in your PATH")
	}
	output.PrintSuccess(out, "git is installed")

	if !execx.LookPath(cfg.CliffBin) {
		return errors.ChangelogToolNotFound(cfg.CliffBin)
	}
	output.PrintSuccess(out, cfg.CliffBin+" is installed")

	gitCLI := git.NewCLI(execx.NewSystemRunner(), "")
	files, err := gitCLI.UncommittedFiles(cmd.Context())
	if err != nil {
		return errors.Wrap(err, errors.External)
	}
	if len(files) > 0 {
		return errors.DirtyWorkingTree(files)
	}
	output.PrintSuccess(out, "Working tree is clean")

	latest, err := git.LatestTag(".")
	if err != nil {
		return errors.Wrap(err, errors.External)
	}
	if latest == "" {
		fmt.Fprintln(out, "No release tag yet; the first release starts the history")
	} else {
		fmt.Fprintf(out, "Latest release tag: %s\n", latest)
	}

	return nil
}
