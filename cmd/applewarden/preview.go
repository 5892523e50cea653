package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvinuesa/applewarden/internal/config"
	"github.com/nvinuesa/applewarden/internal/normalize"
)

const defaultPreviewLimit = 10

type previewFlags struct {
	source     string
	configFile string
	limit      int
	verbose    bool
}

func newPreviewCmd() *cobra.Command {
	var flags previewFlags

	cmd := &cobra.Command{
		Use:   "preview INPUT",
		Short: "Preview a conversion without writing output",
		Long: `Preview what a conversion would produce without writing any output.

The preview shows how many rows were read and skipped, how many login items
they merge into, and the first item names after the name rules are applied.

Examples:
  # Preview an Apple Passwords export
  applewarden preview Passwords.csv

  # Check the effect of name rules on the first 25 items
  applewarden preview Passwords.csv --prefixes www. --strip-parenthetical -n 25`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.source, "source", "s", "", "source type (apple|chrome, default: auto-detect)")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "config file (yaml, toml or json)")
	cmd.Flags().IntVarP(&flags.limit, "limit", "n", defaultPreviewLimit, "number of item names to show (0 for all)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	config.RegisterFlags(cmd.Flags())

	return cmd
}

func runPreview(cmd *cobra.Command, inputPath string, flags previewFlags) error {
	logger := newLogger(cmd.ErrOrStderr(), flags.verbose, false)

	cfg, err := config.Load(config.LoadOptions{
		ConfigFilePath: flags.configFile,
		Flags:          cmd.Flags(),
	})
	if err != nil {
		return err
	}

	g, sourceName, err := groupInput(flags.source, inputPath, logger)
	if err != nil {
		return err
	}

	creds := g.Credentials()
	stats := g.Stats()
	rules := cfg.Rules()

	var withTOTP, multiURI int
	for _, c := range creds {
		if _, ok := c.TOTP(); ok {
			withTOTP++
		}
		if c.URICount() > 1 {
			multiURI++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Source: %s (%s)\n", sourceName, inputPath)
	fmt.Fprintf(out, "Rows: %d read, %d skipped\n", stats.Rows, stats.Skipped)
	fmt.Fprintf(out, "Login items: %d\n", len(creds))
	fmt.Fprintf(out, "  - %d with TOTP\n", withTOTP)
	fmt.Fprintf(out, "  - %d with multiple URIs\n", multiURI)
	if cfg.Folder != "" {
		fmt.Fprintf(out, "Folder: %s\n", cfg.Folder)
	}

	if len(creds) == 0 {
		return nil
	}

	shown := len(creds)
	if flags.limit > 0 && flags.limit < shown {
		shown = flags.limit
	}

	fmt.Fprintln(out, "\nItems:")
	for _, c := range creds[:shown] {
		name := normalize.Normalize(c.Name, rules)
		if name == "" {
			name = "(empty name)"
		}
		fmt.Fprintf(out, "  - %s\n", name)
	}
	if rest := len(creds) - shown; rest > 0 {
		fmt.Fprintf(out, "  ... and %d more\n", rest)
	}

	return nil
}
