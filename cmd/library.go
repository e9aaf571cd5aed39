package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/ytmusic-cli/internal/app"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "List the playlists in your library",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		prepareConfig(cmd)

		pages, _ := cmd.Flags().GetInt("pages")
		app.ExecuteLibraryCommand(cmd.Context(), appConfig, pages)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	libraryCmd.Flags().IntP(
		"pages",
		"p",
		1,
		"number of pages to fetch, following continuations.")

	rootCmd.AddCommand(libraryCmd)
}
