// Package cmd implements the inkwhale CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"
const logo = "🐋"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "inkwhale",
	Short: logo + " inkwhale, a tool-using chat assistant for the terminal",
	Long: logo + ` inkwhale talks to an OpenAI-compatible model and lets it answer
with live results from a small set of built-in tools.`,
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(statusCmd)
}
