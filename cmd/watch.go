package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/ytmusic-cli/internal/app"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var watchCmd = &cobra.Command{
	Use:   "watch {video-id}",
	Short: "Show the playback queue built from a video",
	Long: `Show the playback queue YouTube Music builds from a video, together
with the queue's playlist ID and the lyrics browse ID of the current track.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prepareConfig(cmd)

		limit, _ := cmd.Flags().GetInt("limit")
		app.ExecuteWatchCommand(cmd.Context(), appConfig, args[0], limit)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	watchCmd.Flags().IntP(
		"limit",
		"n",
		0,
		"number of queue entries to collect, following continuations; 0 shows the first page only.")

	rootCmd.AddCommand(watchCmd)
}
