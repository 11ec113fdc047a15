package driver_test

import (
	"context"
	"path/filepath"
	"testing"

	"lox/internal/driver"
)

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.lox", "print 1;")
	writeFile(t, dir, "sub/b.lox", "var x = @;")
	writeFile(t, dir, "notes.txt", "not lox, skipped")

	results, err := driver.ScanDir(context.Background(), dir, driver.ScanDirOptions{MaxDiagnostics: 100})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// deterministic path order
	if results[0].Path != "a.lox" || results[1].Path != filepath.Join("sub", "b.lox") {
		t.Errorf("paths = %q, %q", results[0].Path, results[1].Path)
	}
	if results[0].HadErrors() {
		t.Error("a.lox should be clean")
	}
	if !results[1].HadErrors() {
		t.Error("sub/b.lox should have a lexical error")
	}
}

func TestScanDirEmpty(t *testing.T) {
	results, err := driver.ScanDir(context.Background(), t.TempDir(), driver.ScanDirOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0", len(results))
	}
}

func TestScanDirMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	if _, err := driver.ScanDir(context.Background(), missing, driver.ScanDirOptions{MaxDiagnostics: 10}); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestScanDirWithCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean.lox", "1 + 2;")
	writeFile(t, dir, "broken.lox", `"unterminated`)

	cache, err := driver.OpenScanCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := driver.ScanDirOptions{MaxDiagnostics: 100, Cache: cache}

	// first pass: everything scanned fresh
	first, err := driver.ScanDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range first {
		if r.Cached() {
			t.Errorf("%s: unexpected cache hit on first pass", r.Path)
		}
	}

	// second pass: the clean file hits the cache, the broken one never does
	second, err := driver.ScanDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range second {
		switch r.Path {
		case "broken.lox":
			if r.Cached() {
				t.Error("files with errors must always be re-scanned")
			}
			if !r.HadErrors() {
				t.Error("broken.lox should still have errors")
			}
		case "clean.lox":
			if !r.Cached() {
				t.Error("unchanged clean file should hit the cache")
			}
			if r.HadErrors() {
				t.Error("cached clean file must report no errors")
			}
		}
	}
}
