// Command checklinks verifies that all cross-page anchored links in the
// generated HTML pages resolve correctly. It is a diagnostic aid: broken
// links are reported on stdout, never signaled through the exit code.
package main

import (
	"fmt"
	"io"
	"os"
)

// Exit codes for the checklinks CLI. Broken links are data, not failures,
// so a run that finds them still exits 0.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run parses flags, checks the output directory, and writes the summary.
func run(args []string, stdout, stderr io.Writer) int {
	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	report, err := checkDir(flags.dir)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitGeneral
	}

	report.WriteSummary(stdout)
	return ExitSuccess
}
