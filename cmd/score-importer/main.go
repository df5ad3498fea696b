// Package main provides the CLI entrypoint for score-importer.
//
// score-importer copies students' scores from a score sheet into a roster:
//   - pairs rows by student number when both sheets carry one
//   - otherwise compares names as sets of words, ignoring case and accents
//   - writes the completed roster next to the input
package main

import (
	"fmt"
	"os"

	"score-importer/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
