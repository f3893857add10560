// Package cli provides the command-line interface for benchsift.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"benchsift/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "benchsift",
		Short: "Post-process benchmark output files",
		Long: `Benchsift is a toolkit for post-processing benchmark output files.

It provides:
  - locate    Find the first result line in the overall-best section whose
              timing field falls below a threshold
  - strip     Copy a file while removing every line containing a substring

Both commands read line-oriented text files produced by a benchmark harness
and run to completion in a single pass.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewLocateCommand())
	rootCmd.AddCommand(commands.NewStripCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
