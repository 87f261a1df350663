package main

import (
	"errors"
	"fmt"
	"os"

	md2wiki "github.com/alnah/go-md2wiki"
	"github.com/alnah/go-md2wiki/internal/fileutil"
	flag "github.com/spf13/pflag"
)

// ErrNotADirectory reports a missing or non-directory check target.
var ErrNotADirectory = errors.New("not a directory")

// cliFlags holds the checker's flags.
type cliFlags struct {
	dir string
}

// parseFlags parses command-line arguments.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("checklinks", flag.ContinueOnError)
	fs.StringVarP(&f.dir, "dir", "d", "summary/html", "directory of generated HTML pages")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	return f, nil
}

// checkDir validates every anchored link in the HTML pages under dir.
func checkDir(dir string) (*md2wiki.CheckReport, error) {
	if !fileutil.DirExists(dir) {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}
	return md2wiki.CheckAnchors(os.DirFS(dir))
}
