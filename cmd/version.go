package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/ytmusic-cli/internal/version"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	// Version output must not depend on a configuration file being present.
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(*cobra.Command, []string) {
		fmt.Println(version.Full())
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(versionCmd)
}
