// Package cli wires the relprep commands: the root release workflow plus the
// check, config, and version subcommands.
package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/relprep/relprep/internal/cliff"
	"github.com/relprep/relprep/internal/config"
	"github.com/relprep/relprep/internal/errors"
	"github.com/relprep/relprep/internal/execx"
	"github.com/relprep/relprep/internal/git"
	"github.com/relprep/relprep/internal/manifest"
	"github.com/relprep/relprep/internal/progress"
	"github.com/relprep/relprep/internal/release"
)

var rootCmd = &cobra.Command{
	Use:   "relprep [version-tag]",
	Short: "Prepare a version release: changelog, commit, and signed tag",
	Long: `relprep prepares a version release for the current repository.

It verifies the working tree is clean, resolves the version tag (from the
argument or suggested from commit history), rewrites the project manifest
and the changelog, commits the change, and creates a signed annotated tag
whose message summarizes the unreleased changes.

The version tag must match vMAJOR.MINOR.PATCH exactly. When no tag is
given, the next version is suggested by the changelog generator and
confirmed interactively (empty input accepts).`,
	Example: `  # Release an explicit version
  relprep v1.2.0

  # Let the changelog generator suggest the next version
  relprep

  # Accept the suggestion without prompting (for scripts)
  relprep -y

  # Show what would happen without touching the repository
  relprep --dry-run`,
	Args:          atMostOneVersionTag,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRelease,
}

// atMostOneVersionTag rejects extra positional arguments with a categorized
// error so the failure maps to the argument exit code.
func atMostOneVersionTag(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.NewArgumentErrorWithUsage(
			fmt.Sprintf("expected at most one version tag, got %d arguments", len(args)),
			"relprep [version-tag]",
			"Pass a single tag like v1.2.3, or no argument to use the suggested version",
		)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: .relprep/config.yml)")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.Flags().Bool("dry-run", false, "Print planned actions without mutating the repository")
	rootCmd.Flags().Bool("no-sign", false, "Create an unsigned annotated tag")
}

// Execute runs the CLI and prints a formatted error on failure.
// The returned error maps to a process exit code via ExitCode.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.PrintError(cliErr)
		} else {
			// Every internal failure carries a category; a bare error
			// here comes from cobra's own flag parsing.
			errors.PrintSimpleError(err, errors.Argument)
		}
	}
	return err
}

func runRelease(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		cfg.SkipConfirmations = true
	}
	if noSign, _ := cmd.Flags().GetBool("no-sign"); noSign {
		cfg.SignTags = false
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	applyDebugLogging(cmd)

	if !git.IsRepository(".") {
		return errors.NotAGitRepository()
	}

	runner := execx.NewSystemRunner()
	setter, err := manifest.NewSetter(runner, cfg.Manifest.Tool, "", cfg.Manifest.Args...)
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	r := release.New(
		cfg,
		git.NewCLI(runner, ""),
		release.NewRepoReader(""),
		cliff.NewClient(runner, cfg.CliffBin, ""),
		setter,
		release.WithInput(cmd.InOrStdin()),
		release.WithOutput(cmd.OutOrStdout()),
		release.WithProgress(progress.NewIndicator(cmd.OutOrStdout())),
		release.WithDryRun(dryRun),
	)

	explicitTag := ""
	if len(args) == 1 {
		explicitTag = args[0]
	}

	return r.Run(cmd.Context(), explicitTag)
}

// loadConfig loads configuration honoring the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			"Check the syntax of your config file",
			"Print the default template with: relprep config init --stdout")
	}
	return cfg, nil
}

// applyDebugLogging enables git debug output when --debug is set.
func applyDebugLogging(cmd *cobra.Command) {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		git.SetDebugLogger(log.Printf)
	}
}
