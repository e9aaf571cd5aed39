package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/ytmusic-cli/internal/app"
)

var (
	artistCmd = &cobra.Command{
		Use:   "artist {channel-id}",
		Short: "Show an artist page",
		Long: `Show an artist page: name, subscriber count, biography, and the
albums visible on the page. Channel IDs come from 'search' results.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			prepareConfig(cmd)
			app.ExecuteArtistCommand(cmd.Context(), appConfig, args[0])
		},
	}

	albumsCmd = &cobra.Command{
		Use:   "albums {channel-id}",
		Short: "List an artist's albums",
		Long: `List an artist's full release list when the artist page exposes
one, or the albums visible on the page otherwise.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			prepareConfig(cmd)
			app.ExecuteArtistAlbumsCommand(cmd.Context(), appConfig, args[0])
		},
	}

	albumCmd = &cobra.Command{
		Use:   "album {browse-id}",
		Short: "Show an album with its track list",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			prepareConfig(cmd)
			app.ExecuteAlbumCommand(cmd.Context(), appConfig, args[0])
		},
	}

	lyricsCmd = &cobra.Command{
		Use:   "lyrics {video-id}",
		Short: "Show the lyrics of a track",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			prepareConfig(cmd)
			app.ExecuteLyricsCommand(cmd.Context(), appConfig, args[0])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(artistCmd)
	rootCmd.AddCommand(albumsCmd)
	rootCmd.AddCommand(albumCmd)
	rootCmd.AddCommand(lyricsCmd)
}
