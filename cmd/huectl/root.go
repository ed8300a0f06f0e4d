package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/huectl/huectl/bridge"
	"github.com/huectl/huectl/logging"
)

var (
	flagHost    string
	flagToken   string
	flagVerbose bool

	client *bridge.Client
)

var logger zerolog.Logger

func init() {
	logging.ComponentLogger("cli", &logger)
}

// rootCmd is the base command called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "huectl",
	Short: "Control Philips Hue lights from the command line",
	Long: `huectl talks to a Philips Hue bridge on the local network.
Lights can be addressed by their numeric bridge ID or by their name.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(flagVerbose)

		if flagToken == "" {
			return errors.New("no bridge token: set HUE_TOKEN or pass --token")
		}
		client = bridge.New(flagHost, flagToken)
		return nil
	},
}

// Execute runs the root command and propagates any failure to os.Exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", envOr("HUE_HOST", bridge.DefaultHost), "bridge hostname")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", os.Getenv("HUE_TOKEN"), "bridge API token")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func setupLogging(verbose bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	global := zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}).With().Timestamp().Logger()
	logging.Init(&global)
}
