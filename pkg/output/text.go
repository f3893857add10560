package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// FormatLocate renders a locate report. The default output is the matching
// trimmed line, or the negative-result message when no line qualified.
func (f *TextFormatter) FormatLocate(ctx context.Context, report *LocateReport, w io.Writer) error {
	if report.Outcome.Found {
		fmt.Fprintln(w, report.Outcome.Line)
	} else {
		fmt.Fprintln(w, report.NegativeMessage())
	}

	if !f.opts.Verbose || f.opts.Quiet {
		return nil
	}

	fmt.Fprintln(w)
	if report.Outcome.Found {
		fmt.Fprintf(w, "Source: %s:%d\n", report.File, report.Outcome.LineNum)
		fmt.Fprintf(w, "Field value: %d (threshold: %d)\n", report.Outcome.Value, report.Profile.Threshold)
	}
	fmt.Fprintf(w, "Region: lines %d-%d (exclusive)\n", report.Outcome.Region.Start+1, report.Outcome.Region.End+1)
	fmt.Fprintf(w, "Scanned: %d line(s), %d skipped as non-records\n",
		report.Outcome.LinesScanned, report.Outcome.LinesSkipped)

	return nil
}

// FormatStrip renders a strip report.
func (f *TextFormatter) FormatStrip(ctx context.Context, report *StripReport, w io.Writer) error {
	if f.opts.Quiet {
		fmt.Fprintf(w, "%d of %d line(s) removed\n", report.Stats.LinesRemoved, report.Stats.LinesRead)
		return nil
	}

	fmt.Fprintf(w, "Lines containing %q have been removed; result written to '%s'.\n",
		report.Search, report.Output)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Lines read:    %d\n", report.Stats.LinesRead)
		fmt.Fprintf(w, "Lines kept:    %d\n", report.Stats.LinesKept)
		fmt.Fprintf(w, "Lines removed: %d\n", report.Stats.LinesRemoved)
	}

	return nil
}
