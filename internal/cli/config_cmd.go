package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/relprep/relprep/internal/config"
	"github.com/relprep/relprep/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective relprep configuration",
	Long: `Print the effective configuration after merging defaults, the user
config, the project config, and RELPREP_* environment variables.`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Long: `Write the commented default configuration to .relprep/config.yml.

With --stdout the template is printed instead of written, which is handy
for piping into an existing file.`,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().Bool("stdout", false, "Print the template instead of writing a file")
	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	configPath, _ := cmd.Flags().GetString("config")
	sources := config.Sources(configPath)
	for _, src := range []config.ConfigSource{
		config.SourceDefault, config.SourceUser, config.SourceProject, config.SourceEnv,
	} {
		if origin, ok := sources[src]; ok {
			fmt.Fprintf(out, "# %s: %s\n", src, origin)
		}
	}

	rendered, err := yaml.Marshal(map[string]interface{}{
		"cliff_bin":          cfg.CliffBin,
		"changelog_file":     cfg.ChangelogFile,
		"remote":             cfg.Remote,
		"sign_tags":          cfg.SignTags,
		"skip_confirmations": cfg.SkipConfirmations,
		"commit_marker":      cfg.CommitMarker,
		"manifest": map[string]interface{}{
			"tool": cfg.Manifest.Tool,
			"args": cfg.Manifest.Args,
		},
	})
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	fmt.Fprint(out, string(rendered))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	template := config.GetDefaultConfigTemplate()

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		fmt.Fprint(cmd.OutOrStdout(), template)
		return nil
	}

	path := config.ProjectConfigPath()
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return errors.NewConfigError(
			fmt.Sprintf("config file %s already exists", path),
			"Pass --force to overwrite it",
			"Or print the template with: relprep config init --stdout",
		)
	}

	if err := os.MkdirAll(config.ProjectConfigDir(), 0o755); err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "creating config directory")
	}
	if err := os.WriteFile(path, []byte(template), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.Configuration, "writing config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
