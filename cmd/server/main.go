// Package main is the entry point for the astoria stats service
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Saichiiro/astoria-sub001/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "astoria",
	Short: "Astoria stat modifier service",
	Long: `Astoria resolves item stat modifiers (structured, serialized or written in
free text) and aggregates them into per-character stat totals.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(totalsCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
