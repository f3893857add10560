// Package locator finds the first qualifying record inside a marker-delimited
// region of a benchmark output file.
package locator

// Region is the half-open scan region between the two marker lines.
// Start and End are 0-based indexes of the marker lines themselves;
// the region covers lines strictly between them.
type Region struct {
	// Start is the index of the line containing the start marker.
	Start int

	// End is the index of the line containing the end marker. The end
	// marker is searched independently of the start marker, so End may
	// precede Start, in which case the region is empty.
	End int
}

// Empty reports whether the region contains no lines.
func (r Region) Empty() bool {
	return r.End <= r.Start+1
}

// Outcome is the result of a scan. Exactly one of Found/not-found holds;
// Line, LineNum, and Value are meaningful only when Found is true.
type Outcome struct {
	// Found reports whether a qualifying record was located.
	Found bool

	// Line is the qualifying record, trimmed of surrounding whitespace.
	Line string

	// LineNum is the 1-based line number of the record in the file.
	LineNum int

	// Value is the parsed integer from the compared field.
	Value int

	// Region is the scan region that was searched.
	Region Region

	// LinesScanned is the number of region lines examined.
	LinesScanned int

	// LinesSkipped is the number of region lines that were not records
	// (wrong field count or non-integer field).
	LinesSkipped int
}
