package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"benchsift/pkg/config"
	"benchsift/pkg/document"
	"benchsift/pkg/locator"
	"benchsift/pkg/output"
)

// LocateOptions holds command-line options for the locate command.
type LocateOptions struct {
	Output  string
	Profile string
	Verbose bool
	Quiet   bool

	// Profile overrides
	StartMarker string
	EndMarker   string
	Threshold   int
}

// NewLocateCommand creates the locate command.
func NewLocateCommand() *cobra.Command {
	opts := &LocateOptions{}

	cmd := &cobra.Command{
		Use:   "locate <file>",
		Short: "Find the first qualifying line in the overall-best section",
		Long: `Scan a benchmark output file for the first qualifying result line.

The scan covers the lines strictly between the "OVERALL BEST:" line and the
"Timings By Test Type:" line. A line qualifies when it has exactly seven
whitespace-separated fields and its third field is an integer less than 6.
Lines that do not fit that shape are skipped.

Prints the first qualifying line, trimmed, or a fixed message when the scan
region holds no qualifying line (a valid negative result, exit code 0).

Markers, field shape, and threshold can be overridden with a profile file
(--profile) or individual flags.

Exit codes:
  0 - Scan completed (qualifying line found or not)
  1 - Usage error, unreadable file, or missing marker`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVarP(&opts.Profile, "profile", "p", "", "Scan profile file (YAML)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show scan region and statistics")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Result line only, no details")

	// Override flags
	cmd.Flags().StringVar(&opts.StartMarker, "start-marker", "", "Override the start marker")
	cmd.Flags().StringVar(&opts.EndMarker, "end-marker", "", "Override the end marker")
	cmd.Flags().IntVar(&opts.Threshold, "threshold", 0, "Override the qualifying threshold")

	return cmd
}

func runLocate(cmd *cobra.Command, args []string, opts *LocateOptions) error {
	filePath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load profile
	profile, err := loadProfile(ctx, opts, cmd.Flags().Changed("threshold"))
	if err != nil {
		return err
	}

	// Read the file fully
	doc, err := document.Read(filePath)
	if err != nil {
		return err
	}

	// Run the scan
	outcome, err := locator.New(profile).Locate(ctx, doc)
	if err != nil {
		return err
	}

	// Create report
	report := output.NewLocateReport(outcome, filePath, profile)

	// Create formatter
	formatter, err := createFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	if err := formatter.FormatLocate(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

// loadProfile resolves the effective profile from defaults, the optional
// profile file, and flag overrides, in that order.
func loadProfile(ctx context.Context, opts *LocateOptions, thresholdSet bool) (*config.Profile, error) {
	profile := config.DefaultProfile()

	if opts.Profile != "" {
		loaded, err := config.Load(ctx, opts.Profile)
		if err != nil {
			return nil, fmt.Errorf("loading profile: %w", err)
		}
		profile = loaded
	}

	if opts.StartMarker != "" {
		profile.StartMarker = opts.StartMarker
	}
	if opts.EndMarker != "" {
		profile.EndMarker = opts.EndMarker
	}
	if thresholdSet {
		profile.Threshold = opts.Threshold
	}

	if err := config.Validate(profile); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	return profile, nil
}

func createFormatter(format string, opts output.FormatOptions) (output.Formatter, error) {
	switch format {
	case "text":
		return output.NewTextFormatter(opts), nil
	case "json":
		return output.NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}
