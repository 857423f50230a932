// Inode-decode decodes iNode BLE manufacturer-specific data payloads.
//
// It is a front end over the msd library: paste a hex payload (as
// captured by any BLE scanner) and get the decoded sensor record back,
// either human-readable or as JSON. The serve subcommand runs a local
// HTTP/WebSocket decode service for tools that cannot link the library.
//
// Usage:
//
//	inode-decode [hex payload]...
//	inode-decode serve [flags]
//
// Running without arguments starts an interactive decode loop on stdin.
// See 'inode-decode --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"inode-msd/internal/logging"
	"inode-msd/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inode-decode [hex payload]...",
	Short: "iNode MSD payload decoder",
	Long: `Decode iNode manufacturer-specific data payloads from BLE advertisements.

Payloads are given as hex strings; whitespace, colons, and an 0x prefix
are accepted. With no arguments an interactive decode loop reads
payloads from stdin, one per line.`,
	Version: version.Version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.InitializeFromEnv(); err != nil {
			return err
		}
		if len(args) == 0 {
			return runInteractive(cmd)
		}
		return runDecode(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().BoolVar(&outputJSON, "json", false, "print records as JSON")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(versionCmd)
}
