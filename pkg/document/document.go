// Package document provides line-oriented reading of benchmark output files.
package document

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Line is a single line of a document with its 1-based position.
type Line struct {
	// Text is the line content with the terminator stripped.
	Text string

	// Num is the 1-based line number in the source file.
	Num int
}

// Document is an ordered sequence of lines read fully from a file.
// It is immutable once created.
type Document struct {
	path  string
	lines []Line
}

// Read loads the file at path into a Document.
func Read(path string) (*Document, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc := &Document{path: path}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	num := 0
	for scanner.Scan() {
		num++
		doc.lines = append(doc.lines, Line{Text: scanner.Text(), Num: num})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return doc, nil
}

// Path returns the file path the document was read from.
func (d *Document) Path() string {
	return d.path
}

// Len returns the number of lines in the document.
func (d *Document) Len() int {
	return len(d.lines)
}

// Lines returns the document's lines in file order.
func (d *Document) Lines() []Line {
	return d.lines
}

// FindFirst returns the index of the first line containing substr,
// or -1 if no line contains it.
func (d *Document) FindFirst(substr string) int {
	for i, line := range d.lines {
		if strings.Contains(line.Text, substr) {
			return i
		}
	}
	return -1
}
