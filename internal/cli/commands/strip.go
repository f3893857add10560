package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"benchsift/pkg/filter"
	"benchsift/pkg/output"
)

// StripOptions holds command-line options for the strip command.
type StripOptions struct {
	Output  string
	Verbose bool
	Quiet   bool
}

// NewStripCommand creates the strip command.
func NewStripCommand() *cobra.Command {
	opts := &StripOptions{}

	cmd := &cobra.Command{
		Use:   "strip <input-file> <search-string> <output-file>",
		Short: "Copy a file, removing lines that contain a substring",
		Long: `Copy a text file to a new file, omitting every line that contains the
search string (case-sensitive, literal match). Remaining lines keep their
content and order.

An empty search string matches every line, producing an empty output file.
The output file is created or overwritten. Avoid using the same path for
input and output; the result of reading a file while truncating it is
platform-defined.

Exit codes:
  0 - Filtered copy written
  1 - Usage error, unreadable input, or unwritable output`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrip(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show line counts")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only")

	return cmd
}

func runStrip(cmd *cobra.Command, args []string, opts *StripOptions) error {
	inputPath, search, outputPath := args[0], args[1], args[2]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	stats, err := filter.Strip(ctx, inputPath, search, outputPath)
	if err != nil {
		return err
	}

	report := output.NewStripReport(stats, inputPath, search, outputPath)

	formatter, err := createFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	if err := formatter.FormatStrip(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}
