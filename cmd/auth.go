package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/ytmusic-cli/internal/app"
)

var (
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Authentication management commands",
		Long: `Manage authentication for YouTube Music.

Use 'auth login' to sign in through a browser and capture the session
cookie, or 'auth oauth' to authorize through the OAuth device code flow.`,
	}

	authLoginCmd = &cobra.Command{
		Use:   "login",
		Short: "Sign in through a browser and capture the session cookie",
		Long: `Opens a browser window for you to sign in to YouTube Music.

The login process:
1. Browser opens at https://music.youtube.com
2. Click "Sign in" and authenticate with your Google account
3. Complete two-factor authentication if prompted
4. Wait until the music home page loads

After successful login, the session cookie is automatically extracted
and saved to the configuration file.

You can then browse your music:
ytmusic-cli library`,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteAuthLoginCommand(cmd.Context(), appConfig)
		},
	}

	authOAuthCmd = &cobra.Command{
		Use:   "oauth",
		Short: "Authorize through the OAuth device code flow",
		Long: `Runs the OAuth device code flow without opening a browser on this
machine.

The flow:
1. A verification URL and a short code are printed
2. Open the URL on any device and enter the code
3. Approve the access request

After approval, the granted token is saved to the configuration file
and refreshed automatically when it expires.`,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteAuthOAuthCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authOAuthCmd)

	rootCmd.AddCommand(authCmd)
}
