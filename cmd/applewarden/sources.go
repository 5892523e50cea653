package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvinuesa/applewarden/internal/sources"
)

func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List available source adapters",
		Long: `List all available source adapters that can be used as input.

Each adapter reads one CSV export layout. Use the --source flag with the
convert command to pick one explicitly; otherwise it is detected from the
CSV header.`,
		Args: cobra.NoArgs,
		Run:  runSources,
	}
}

func runSources(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Available source adapters:")
	fmt.Fprintln(out)

	// List is sorted by name.
	for _, source := range sources.DefaultRegistry().List() {
		fmt.Fprintf(out, "  %-12s %s\n", source.Name(), source.Description())
		fmt.Fprintf(out, "  %-12s Extensions: %s\n", "", strings.Join(source.SupportedExtensions(), ", "))
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Use 'applewarden convert -s <source> <input> <output>' to convert.")
}
