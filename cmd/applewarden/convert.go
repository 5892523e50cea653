package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nvinuesa/applewarden/internal/bitwarden"
	"github.com/nvinuesa/applewarden/internal/config"
	"github.com/nvinuesa/applewarden/internal/export"
)

type convertFlags struct {
	source     string
	configFile string
	verbose    bool
	quiet      bool
}

func newConvertCmd() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert INPUT OUTPUT",
		Short: "Convert a password CSV to Bitwarden JSON",
		Long: `Convert a password CSV export into a Bitwarden JSON import file.

Rows with the same username and password become one login item holding the
union of their websites and notes. The first title seen for a pair names
the item. Rows with neither username nor password are skipped.

Use "-" as OUTPUT to write the JSON to stdout. Diagnostics and the summary
always go to stderr. The directory holding OUTPUT must already exist; an
existing OUTPUT file is replaced atomically.

Examples:
  # Convert an Apple Passwords export
  applewarden convert Passwords.csv bitwarden.json

  # Place items in a folder
  applewarden convert Passwords.csv bitwarden.json --folder "Apple Import"

  # Clean item names
  applewarden convert Passwords.csv out.json --strip-parenthetical --prefixes www.,m. --suffixes .com

  # Read a Chrome export explicitly
  applewarden convert -s chrome "Chrome Passwords.csv" out.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], args[1], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.source, "source", "s", "", "source type (apple|chrome, default: auto-detect)")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "config file (yaml, toml or json)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress all output except errors")
	config.RegisterFlags(cmd.Flags())

	return cmd
}

func runConvert(cmd *cobra.Command, inputPath, outputPath string, flags convertFlags) error {
	errOut := cmd.ErrOrStderr()
	logger := newLogger(errOut, flags.verbose, flags.quiet)

	cfg, err := config.Load(config.LoadOptions{
		ConfigFilePath: flags.configFile,
		Flags:          cmd.Flags(),
	})
	if err != nil {
		return err
	}

	rules := cfg.Rules()
	logger.Debug("name rules",
		"strip_parenthetical", rules.StripParenthetical,
		"prefixes", rules.Prefixes,
		"suffixes", rules.Suffixes)

	g, _, err := groupInput(flags.source, inputPath, logger)
	if err != nil {
		return err
	}

	buildOpts := bitwarden.DefaultOptions()
	buildOpts.FolderName = cfg.Folder
	buildOpts.Rules = rules
	buildOpts.OnEmptyName = func(original string) {
		logger.Warn("item name is empty after normalization", "title", original)
	}

	doc := bitwarden.Build(g.Credentials(), buildOpts)

	stdout := cmd.OutOrStdout()
	if outputPath == export.StdoutPath && isTerminal(stdout) {
		logger.Warn("writing unencrypted credentials to the terminal")
	}

	if err := export.Export(doc, export.Options{OutputPath: outputPath, Stdout: stdout}); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if !flags.quiet {
		fmt.Fprintf(errOut, "Successfully converted %d login items.\n", len(doc.Items))
		if outputPath != export.StdoutPath {
			fmt.Fprintf(errOut, "Output written to %s\n", outputPath)
		}
	}

	return nil
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
