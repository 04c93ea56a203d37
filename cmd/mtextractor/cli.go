package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mtreplays/extractor/internal/worker"
)

// collectReplayFiles expands the command line arguments into a list of
// replay files. Plain files are taken as-is, directories are walked
// recursively for *.mtreplay entries.
func collectReplayFiles(args []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".mtreplay") {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// printSummary writes per-file results to stdout and returns the
// number of failed files.
func printSummary(results []worker.Result) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", r.Path, r.Err)
			continue
		}
		fmt.Printf("OK    %s: %s on %s, %s, %d damage, %d XP, %d credits\n",
			r.Path,
			r.Record.VehicleTag,
			r.Record.MapDisplayName,
			r.Record.Outcome.Status,
			r.Record.Damage,
			r.Record.XP,
			r.Record.Credits,
		)
	}
	return failed
}
