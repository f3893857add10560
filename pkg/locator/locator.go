package locator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"benchsift/pkg/config"
	"benchsift/pkg/document"
)

// ErrMarkerNotFound indicates a required marker does not occur in the file.
var ErrMarkerNotFound = errors.New("required marker not found")

// Locator scans documents according to a profile.
type Locator struct {
	profile *config.Profile
}

// New creates a Locator for the given profile.
func New(profile *config.Profile) *Locator {
	return &Locator{profile: profile}
}

// Locate scans the lines strictly between the profile's markers and returns
// the first record whose compared field is strictly below the threshold.
// A completed scan with no qualifying record is a valid negative Outcome,
// not an error. Malformed region lines are skipped.
func (l *Locator) Locate(ctx context.Context, doc *document.Document) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := doc.FindFirst(l.profile.StartMarker)
	if start < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMarkerNotFound, l.profile.StartMarker)
	}

	// The end marker search is independent of the start marker's position.
	// If it occurs earlier in the file, the region comes out empty.
	end := doc.FindFirst(l.profile.EndMarker)
	if end < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMarkerNotFound, l.profile.EndMarker)
	}

	outcome := &Outcome{Region: Region{Start: start, End: end}}

	lines := doc.Lines()
	for i := start + 1; i < end; i++ {
		outcome.LinesScanned++

		value, ok := parseRecord(lines[i].Text, l.profile.FieldCount, l.profile.FieldIndex)
		if !ok {
			outcome.LinesSkipped++
			continue
		}

		if value < l.profile.Threshold {
			outcome.Found = true
			outcome.Line = strings.TrimSpace(lines[i].Text)
			outcome.LineNum = lines[i].Num
			outcome.Value = value
			return outcome, nil
		}
	}

	return outcome, nil
}

// parseRecord reports whether text is a well-formed record and, if so,
// returns the integer value of the compared field.
func parseRecord(text string, fieldCount, fieldIndex int) (int, bool) {
	fields := strings.Fields(text)
	if len(fields) != fieldCount {
		return 0, false
	}

	value, err := strconv.Atoi(fields[fieldIndex])
	if err != nil {
		return 0, false
	}

	return value, true
}
