// Package cmd provides command-line interface commands for threadly
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/threadly/threadly/internal/log"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "threadly",
	Short: "Terminal client for Threadly",
	Long: `threadly - Stitching People Together, One Thread at a Time

Log in to or create a Threadly account from the terminal.

Without a subcommand the interactive form is shown. The backend URL is read from
.threadly/conf.yaml, the THREADLY_URL environment variable or the --url flag.`,
	Example: `  # Open the interactive form
  threadly

  # Log in non-interactively
  threadly login --email ada@example.com

  # Create an account
  threadly register --first-name Ada --last-name Lovelace --email ada@example.com \
    --location London --occupation Mathematician --picture ./ada.png --generate-password`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		runFormCommand(cmd, "login")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("url", "", "Backend base URL (overrides config and THREADLY_URL)")
	rootCmd.PersistentFlags().Bool("insecure", false, "Skip TLS certificate verification")
}
