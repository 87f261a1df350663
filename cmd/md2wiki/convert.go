package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	md2wiki "github.com/alnah/go-md2wiki"
	"github.com/alnah/go-md2wiki/internal/config"
	"github.com/alnah/go-md2wiki/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWritePage    = errors.New("failed to write HTML page")
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// run executes the full converter: load config, discover sources, build the
// page URL map, convert in parallel, write pages, report.
func run(flags *cliFlags, env *Environment) int {
	cfg, err := config.Load(flags.config)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	params, err := resolveParams(flags, cfg)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	svc, err := md2wiki.New(params.wiki)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	sources, err := discoverSources(params.inputDir)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	docs, err := loadDocuments(svc, sources)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	// Barrier: the map must cover the whole batch before any conversion,
	// because cross-document links resolve against all pages at once.
	urlMap := md2wiki.BuildPageURLMap(params.wiki, docs)
	if flags.verbose {
		printPageURLMap(env.Stdout, urlMap)
	}

	if err := os.MkdirAll(params.outputDir, dirPermissions); err != nil {
		fmt.Fprintf(env.Stderr, "creating output directory: %v\n", err)
		return ExitIO
	}

	results := convertBatch(context.Background(), svc, docs, sources, urlMap, params)

	failed := printResults(results, flags.quiet, flags.verbose, env)
	if failed > 0 {
		return ExitGeneral
	}
	return ExitSuccess
}

// loadDocuments reads every source file into a Document, extracting titles.
func loadDocuments(svc *md2wiki.Service, sources []string) ([]md2wiki.Document, error) {
	docs := make([]md2wiki.Document, 0, len(sources))
	for _, src := range sources {
		content, err := os.ReadFile(src) // #nosec G304 -- discovered path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		docs = append(docs, svc.NewDocument(fileutil.Stem(src), string(content)))
	}
	return docs, nil
}

// convertBatch converts documents concurrently with a bounded worker fan-out.
// Each document is independent once the page URL map exists.
func convertBatch(ctx context.Context, svc *md2wiki.Service, docs []md2wiki.Document, sources []string, urlMap md2wiki.PageURLMap, params *runParams) []ConversionResult {
	concurrency := params.workers
	if concurrency > len(docs) {
		concurrency = len(docs)
	}

	results := make([]ConversionResult, len(docs))
	jobs := make(chan int, len(docs))
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{InputPath: sources[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = convertOne(ctx, svc, docs[idx], sources[idx], urlMap, params.outputDir)
			}
		}()
	}

	for i := range docs {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertOne converts a single document and writes the resulting page.
func convertOne(ctx context.Context, svc *md2wiki.Service, doc md2wiki.Document, source string, urlMap md2wiki.PageURLMap, outputDir string) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: source}

	page, err := svc.ConvertDocument(ctx, doc, urlMap)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	result.OutputPath = filepath.Join(outputDir, page.Name)
	// #nosec G306 -- HTML pages are meant to be readable
	if err := os.WriteFile(result.OutputPath, []byte(page.HTML), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
	}

	result.Duration = time.Since(start)
	return result
}

// printPageURLMap prints the batch-wide page URL map, sorted by page name.
func printPageURLMap(w io.Writer, urlMap md2wiki.PageURLMap) {
	names := make([]string, 0, len(urlMap))
	for name := range urlMap {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Page URL map:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s -> %s\n", name, urlMap[name])
	}
	fmt.Fprintln(w)
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	failed := 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}

	return failed
}
