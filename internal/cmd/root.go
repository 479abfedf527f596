package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Framecraft Admin - custom framing shop backend",
	Long: `Framecraft Admin is the backend for the custom framing shop's
administrative panel: catalog management, order viewing and status
transitions, and user administration over the shop's document
collections.

Run it as a server for the panel, or use the CLI commands to set up
the schema, seed sample data, grant the first admin, or sweep for
records left inconsistent by interrupted image uploads.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
