package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chatwire-cli",
	Short: "Chatwire CLI tool",
	Long: `Chatwire CLI is a command-line companion for the Chatwire relay.

Available commands:
  topics     List the bus topics and event kinds the relay publishes
  version    Print the version number

Use "chatwire-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
