package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/ytmusic-cli/internal/app"
)

var (
	searchCmd = &cobra.Command{
		Use:   "search {term}",
		Short: "Search for artists",
		Long: `Search for artists matching a term.

Only the first page of artist results is shown.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			prepareConfig(cmd)
			app.ExecuteSearchCommand(cmd.Context(), appConfig, args[0])
		},
	}

	suggestCmd = &cobra.Command{
		Use:   "suggest {term}",
		Short: "Show search suggestions",
		Long: `Show search completions for a partial term.

Suggestions coming from your own search history are marked with '*'.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			prepareConfig(cmd)
			app.ExecuteSuggestCommand(cmd.Context(), appConfig, args[0])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(suggestCmd)
}
