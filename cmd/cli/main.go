// Benchsift - Benchmark Log Post-Processing Toolkit
//
// Benchsift post-processes the line-oriented output files written by a
// benchmark harness. It can locate the first qualifying result line in the
// overall-best section of a run, and strip lines matching a substring from
// a file.
package main

import (
	"os"

	"benchsift/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
