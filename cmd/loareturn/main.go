// Command loareturn runs the LOA return reconciliation from the command
// line. Inputs default to the newest spreadsheet in the working directory
// matching the standard export names, so a bare `loareturn` in the folder
// the reports were dropped into does the right thing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/opsdesk/loareturn/internal/logging"
	"github.com/opsdesk/loareturn/internal/recon"
)

// Default glob patterns for the two exports. Both .xls and .xlsx match.
const (
	salesPattern  = "Sales Compensation Report*.xls*"
	peoplePattern = "People*.xls*"
)

func main() {
	var (
		salesPath  = flag.String("sales", "", "path to the sales compensation report (default: newest match for \"Sales Compensation Report*.xls*\")")
		peoplePath = flag.String("people", "", "path to the people roster (default: newest match for \"People*.xls*\")")
		outDir     = flag.String("out", ".", "directory to write the output workbook into")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logging.Setup(level, "text")

	if err := run(*salesPath, *peoplePath, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, "error:", recon.FormatUserError(err))
		os.Exit(1)
	}
}

func run(salesPath, peoplePath, outDir string) error {
	salesPath, err := resolveInput(salesPath, salesPattern)
	if err != nil {
		return err
	}
	peoplePath, err = resolveInput(peoplePath, peoplePattern)
	if err != nil {
		return err
	}

	fmt.Printf("sales report: %s\n", salesPath)
	fmt.Printf("people roster: %s\n", peoplePath)

	events := recon.Go(context.Background(), recon.Request{
		SalesPath:  salesPath,
		PeoplePath: peoplePath,
		OutputDir:  outDir,
		Projection: recon.ReturnUpdate,
	})

	for ev := range events {
		switch {
		case ev.Err != nil:
			return ev.Err
		case ev.Result != nil:
			fmt.Printf("wrote %d row(s) to %s\n", ev.Result.RowCount, ev.Result.OutputPath)
		default:
			fmt.Printf("[%3d%%] %s\n", ev.Progress.Percent, ev.Progress.Message)
		}
	}
	return nil
}

// resolveInput returns path unchanged when given, otherwise the newest
// file in the working directory matching pattern.
func resolveInput(path, pattern string) (string, error) {
	if path != "" {
		return path, nil
	}
	return newestMatch(".", pattern)
}

// newestMatch finds the most recently modified file in dir matching the
// glob pattern. Directories and unstat-able entries are skipped.
func newestMatch(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	var (
		newest     string
		newestInfo os.FileInfo
	)
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if newestInfo == nil || info.ModTime().After(newestInfo.ModTime()) {
			newest = m
			newestInfo = info
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no matching file found for %q: %w", pattern, recon.ErrMissingInput)
	}
	return newest, nil
}
