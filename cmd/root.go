package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// CLI flags shared across subcommands
	logLevel     string // Log verbosity level
	scenarioFile string // Path to a YAML scenario file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "railway-sim",
	Short: "Railway deadlock simulator: Banker's avoidance, wait-for-graph detection, recovery",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	checkCmd.Flags().StringVar(&scenarioFile, "scenario", "", "YAML scenario file (required)")
	exportCmd.Flags().StringVar(&scenarioFile, "scenario", "", "YAML scenario file (default: built-in sample)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
}
