// Command sitectl runs and inspects the site from the command line.
package main

import (
	"fmt"
	"os"

	"appliance-site/config"
	"appliance-site/internal/platform/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "Run and inspect the appliance repair site",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.LoadEnv()
		level := cfg.LOG_LEVEL
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New(level, true)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(serveCmd, seedCmd, renderCmd, themesCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
