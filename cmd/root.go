package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mindvault",
	Short: "Personal knowledge management backend",
	Long: `mindvault is the backend for a personal knowledge management
application: it tracks per-concept learning progress with spaced
repetition, serves adaptive quiz questions and recommends external
learning resources matched to the user's learning style.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
