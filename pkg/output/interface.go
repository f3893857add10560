package output

import (
	"context"
	"io"
)

// Formatter renders results in a specific format.
type Formatter interface {
	// FormatLocate renders a locate report to the given writer.
	FormatLocate(ctx context.Context, report *LocateReport, w io.Writer) error

	// FormatStrip renders a strip report to the given writer.
	FormatStrip(ctx context.Context, report *StripReport, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose enables detailed output including scan statistics.
	Verbose bool

	// Quiet enables minimal summary-only output.
	Quiet bool
}
