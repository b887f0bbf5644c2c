// Command reflow-cli is a demo driver for the reflow scheduling engine:
// it loads a scenario file, runs the reflow core over it, prints the
// resulting changes, and records run history to a local SQLite
// database for later lookup. It is an external consumer of the core,
// not part of it.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shopfloor/reflow/internal/config"
	"github.com/shopfloor/reflow/pkg/logger"
)

var (
	configFile string
	noColor    bool
	log        *logger.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "reflow-cli",
	Short: "Reflow production schedules around delays and maintenance windows",
	Long: `reflow-cli is a demo driver for the reflow scheduling engine.

It loads a scenario describing work centers (with weekly shifts and
maintenance blackouts) and work orders (with dependencies), reflows
the schedule deterministically, and reports what moved.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor || os.Getenv("NO_COLOR") != "" {
			errorColor.DisableColor()
			successColor.DisableColor()
			headerColor.DisableColor()
			infoColor.DisableColor()
		}

		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		log = logger.New("reflow-cli", cfg.Logging.Level)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML, default: built-in defaults)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(historyCmd)

	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
