// Package output provides formatting for locate and strip results.
package output

import (
	"fmt"

	"benchsift/pkg/config"
	"benchsift/pkg/filter"
	"benchsift/pkg/locator"
)

// LocateReport is the complete output of a locate run.
type LocateReport struct {
	// File is the benchmark output file that was scanned.
	File string

	// Profile is the scan profile that was applied.
	Profile *config.Profile

	// Outcome is the scan result.
	Outcome *locator.Outcome
}

// NewLocateReport creates a LocateReport from a scan outcome.
func NewLocateReport(outcome *locator.Outcome, file string, profile *config.Profile) *LocateReport {
	return &LocateReport{
		File:    file,
		Profile: profile,
		Outcome: outcome,
	}
}

// NegativeMessage is the fixed message reported when the scan completes
// without a qualifying line.
func (r *LocateReport) NegativeMessage() string {
	return fmt.Sprintf("No line found where the %s field is less than %d.",
		ordinal(r.Profile.FieldIndex+1), r.Profile.Threshold)
}

// StripReport is the complete output of a strip run.
type StripReport struct {
	// Input is the source file path.
	Input string

	// Search is the literal substring that was removed.
	Search string

	// Output is the destination file path.
	Output string

	// Stats summarizes the filtering run.
	Stats filter.Stats
}

// NewStripReport creates a StripReport from filtering stats.
func NewStripReport(stats *filter.Stats, input, search, outputFile string) *StripReport {
	return &StripReport{
		Input:  input,
		Search: search,
		Output: outputFile,
		Stats:  *stats,
	}
}

// ordinal returns the English ordinal word for small field positions.
func ordinal(n int) string {
	words := []string{
		"zeroth", "first", "second", "third", "fourth", "fifth",
		"sixth", "seventh", "eighth", "ninth", "tenth",
	}
	if n >= 0 && n < len(words) {
		return words[n]
	}
	return fmt.Sprintf("%dth", n)
}
