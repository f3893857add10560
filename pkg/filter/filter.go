// Package filter copies a text file while omitting lines that contain a
// literal search substring.
package filter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Stats summarizes a filtering run. LinesKept + LinesRemoved == LinesRead.
type Stats struct {
	// LinesRead is the total number of input lines.
	LinesRead int

	// LinesKept is the number of lines written to the output.
	LinesKept int

	// LinesRemoved is the number of lines omitted.
	LinesRemoved int
}

// Strip reads inputPath line by line and writes to outputPath every line
// that does not contain search, preserving content and order. Lines
// containing search are omitted entirely. An empty search matches every
// line. The output file is created or truncated; on a mid-write failure a
// partially written output may remain.
func Strip(ctx context.Context, inputPath, search, outputPath string) (*Stats, error) {
	in, err := os.Open(inputPath) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening input file %s: %w", inputPath, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", outputPath, err)
	}

	stats := &Stats{}
	writer := bufio.NewWriter(out)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			out.Close()
			return nil, err
		}

		line := scanner.Text()
		stats.LinesRead++

		if strings.Contains(line, search) {
			stats.LinesRemoved++
			continue
		}

		if _, err := writer.WriteString(line); err != nil {
			out.Close()
			return nil, fmt.Errorf("writing %s: %w", outputPath, err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			out.Close()
			return nil, fmt.Errorf("writing %s: %w", outputPath, err)
		}
		stats.LinesKept++
	}
	if err := scanner.Err(); err != nil {
		out.Close()
		return nil, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	if err := writer.Flush(); err != nil {
		out.Close()
		return nil, fmt.Errorf("writing %s: %w", outputPath, err)
	}

	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", outputPath, err)
	}

	return stats, nil
}
