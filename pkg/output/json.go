package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// FormatLocate renders a locate report as JSON.
func (f *JSONFormatter) FormatLocate(ctx context.Context, report *LocateReport, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		// Quiet mode: just the outcome
		return encoder.Encode(report.Outcome)
	}

	return encoder.Encode(report)
}

// FormatStrip renders a strip report as JSON.
func (f *JSONFormatter) FormatStrip(ctx context.Context, report *StripReport, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		// Quiet mode: just the stats
		return encoder.Encode(report.Stats)
	}

	return encoder.Encode(report)
}
