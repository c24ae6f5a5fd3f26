package cli

import (
	"time"

	"github.com/spf13/cobra"

	"JaundiceRate/internal/config"
)

// rootFlags are deployment-tunable overrides applied on top of the YAML
// and environment configuration.
type rootFlags struct {
	logLevel        string
	fetchTimeout    time.Duration
	tokenizeTimeout time.Duration
}

var flags rootFlags

var rootCmd = &cobra.Command{
	Use:   "jaundicerate",
	Short: "Scores news articles for sensationalism against a charged-word dictionary",
	Long: `jaundicerate fetches news articles, extracts their text, and reports the
jaundice rate: the percentage of words carrying strong emotional connotation.
Articles in one batch are processed concurrently and independently; a slow or
broken source never blocks the rest of the batch.`,
	SilenceUsage: true,
}

// Execute runs the CLI and returns the command error, if any.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig combines file/env configuration with command-line overrides.
func loadConfig() config.Config {
	cfg := config.Load()

	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.fetchTimeout > 0 {
		cfg.Processing.FetchTimeout = config.Duration(flags.fetchTimeout)
	}
	if flags.tokenizeTimeout > 0 {
		cfg.Processing.TokenizeTimeout = config.Duration(flags.tokenizeTimeout)
	}

	return cfg
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log verbosity (debug, info, warn, error)")
	rootCmd.PersistentFlags().DurationVar(&flags.fetchTimeout, "fetch-timeout", 0, "per-article fetch budget (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&flags.tokenizeTimeout, "tokenize-timeout", 0, "per-article tokenize budget (overrides config)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(serveCmd)
}
