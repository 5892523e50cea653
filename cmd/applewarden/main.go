// Package main provides the entry point for the applewarden CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-edge"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "applewarden",
		Short: "Convert Apple Passwords exports to Bitwarden JSON",
		Long: `applewarden converts a password CSV exported from Apple Passwords
(or Chrome) into an unencrypted Bitwarden JSON import file.

Rows sharing the same username and password are merged into a single login
item carrying every website and note found for that pair. Item names can be
cleaned with parenthetical, prefix and suffix stripping rules.

Examples:
  # Convert to a file
  applewarden convert Passwords.csv bitwarden.json

  # Put every item in a folder and strip common prefixes
  applewarden convert Passwords.csv bitwarden.json -f Apple --prefixes www.,m.

  # Write JSON to stdout
  applewarden convert Passwords.csv - > bitwarden.json

  # Preview without conversion
  applewarden preview Passwords.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newSourcesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
