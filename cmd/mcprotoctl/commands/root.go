// Package commands implements the mcprotoctl subcommands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// outputFormat controls the output format for commands that support it
// (table or yaml).
var outputFormat string

// rootCmd is the top-level cobra command for mcprotoctl.
var rootCmd = &cobra.Command{
	Use:   "mcprotoctl",
	Short: "Inspect and exercise the mcproto packet catalog",
	Long:  "mcprotoctl dumps the registered packet schema catalog and performs handshake/status round-trips against a live server.",
	// Silence cobra's built-in usage/error printing so we control it.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table",
		"output format: table, yaml")

	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(pingCmd())
	rootCmd.AddCommand(versionCmd())
}

// Execute runs the root command and exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
