package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relprep/relprep/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show relprep version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if version.IsDevBuild() {
			fmt.Fprintf(out, "relprep %s (unreleased build)\n", version.Version)
		} else {
			fmt.Fprintf(out, "relprep %s\n", version.Version)
		}
		fmt.Fprintf(out, "  commit: %s\n", version.Commit)
		fmt.Fprintf(out, "  built:  %s\n", version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
