package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/ytmusic-cli/internal/config"
	"github.com/oshokin/ytmusic-cli/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "ytmusic-cli",
		Short: "Browse YouTube Music from the command line.",
		Long: `ytmusic-cli is a CLI tool for browsing YouTube Music.
It supports:
- Searching for artists and fetching search suggestions
- Browsing artist pages, release lists, and albums
- Fetching lyrics and playback queues
- Listing the playlists in your library

Authentication uses either a captured browser session ('auth login')
or the OAuth device code flow ('auth oauth').`,
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	persistentFlags := rootCmd.PersistentFlags()

	persistentFlags.String(
		"language",
		"",
		"interface language hint sent to the API, for example: en, de, ru.")

	persistentFlags.String(
		"region",
		"",
		"region hint sent to the API, for example: US, DE, RU.")

	persistentFlags.String(
		"log-level",
		"",
		"logging verbosity: debug, info, warn, error.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

// prepareConfig applies flag overrides, validates the result, and raises
// the log level. Commands that talk to the API call it at the start of
// their Run.
func prepareConfig(cmd *cobra.Command) {
	if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("language"); flag != nil && flag.Changed {
		cfg.Language, _ = flags.GetString("language")
	}

	if flag := flags.Lookup("region"); flag != nil && flag.Changed {
		cfg.Region, _ = flags.GetString("region")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	return config.ValidateConfig(cfg)
}
