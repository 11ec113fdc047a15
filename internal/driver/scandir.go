package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"lox/internal/source"
)

// FileExt is the extension of Lox source files picked up by directory scans.
const FileExt = ".lox"

// ScanDirResult is the outcome of scanning one file during a directory walk.
// Exactly one of Result and Entry is set: Result for a fresh scan, Entry
// for a cache hit that skipped lexing.
type ScanDirResult struct {
	Path   string // path relative to the scanned directory
	Result *TokenizeResult
	Entry  *ScanEntry
}

// HadErrors reports whether the file had lexical errors, fresh or cached.
func (r ScanDirResult) HadErrors() bool {
	if r.Entry != nil {
		return r.Entry.HadErrors
	}
	return r.Result.Bag.HasErrors()
}

// Cached reports whether the scan was skipped via the cache.
func (r ScanDirResult) Cached() bool { return r.Entry != nil }

// ScanDirOptions configures ScanDir.
type ScanDirOptions struct {
	MaxDiagnostics int
	// Cache, when non-nil, lets unchanged clean files skip re-lexing by
	// content hash. Files with errors are always re-scanned so their
	// diagnostics can be reprinted.
	Cache *ScanCache
}

// listLoxFiles returns the sorted relative paths of all Lox files under dir.
func listLoxFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, FileExt) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ScanDir scans every Lox file under dir, one worker per file up to
// GOMAXPROCS. Each file gets its own FileSet and Bag, so scans are fully
// independent and need no locking beyond the per-index result slot.
// Results come back in deterministic path order regardless of completion
// order.
func ScanDir(ctx context.Context, dir string, opts ScanDirOptions) ([]ScanDirResult, error) {
	files, err := listLoxFiles(dir)
	if err != nil {
		return nil, err
	}

	results := make([]ScanDirResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, rel := range files {
		i, rel := i, rel
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			full := filepath.Join(dir, rel)

			fset := source.NewFileSet()
			fileID, err := fset.Load(full)
			if err != nil {
				return err
			}
			file := fset.Get(fileID)

			if opts.Cache != nil {
				if entry, ok, err := opts.Cache.Get(file.Hash); err == nil && ok && !entry.HadErrors {
					results[i] = ScanDirResult{Path: rel, Entry: entry}
					return nil
				}
			}

			res := scan(fset, fileID, opts.MaxDiagnostics)
			if opts.Cache != nil {
				err := opts.Cache.Put(file.Hash, &ScanEntry{
					Schema:     scanCacheSchemaVersion,
					Path:       rel,
					TokenCount: len(res.Tokens),
					ErrorCount: res.Bag.ErrorCount(),
					HadErrors:  res.Bag.HasErrors(),
				})
				if err != nil {
					return err
				}
			}

			results[i] = ScanDirResult{Path: rel, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
