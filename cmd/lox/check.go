package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lox/internal/diagfmt"
	"lox/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] dir",
	Short: "Scan every Lox file under a directory",
	Long: `Check walks a directory tree, scans every *.lox file in parallel, and
reports all lexical errors found. Exits 65 if any file has errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("cache", false, "skip re-lexing unchanged clean files")
	checkCmd.Flags().String("cache-dir", "", "cache directory (default: user cache dir)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := loadToolConfig(dir)
	if err != nil {
		return err
	}

	opts := driver.ScanDirOptions{
		MaxDiagnostics: maxDiagnostics(cmd, cfg),
	}

	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	if useCache {
		cacheDir, err := cmd.Flags().GetString("cache-dir")
		if err != nil {
			return fmt.Errorf("failed to get cache-dir flag: %w", err)
		}
		var cache *driver.ScanCache
		if cacheDir != "" {
			cache, err = driver.OpenScanCacheAt(cacheDir)
		} else {
			cache, err = driver.OpenScanCache("lox")
		}
		if err != nil {
			return fmt.Errorf("failed to open scan cache: %w", err)
		}
		opts.Cache = cache
	}

	results, err := driver.ScanDir(cmd.Context(), dir, opts)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	colored := useColor(cmd, cfg, os.Stderr)
	hadErrors := false

	for _, r := range results {
		switch {
		case r.Cached():
			fmt.Fprintf(out, "%s: ok (cached, %d tokens)\n", r.Path, r.Entry.TokenCount)
		case r.HadErrors():
			hadErrors = true
			fmt.Fprintf(out, "%s: %d error(s)\n", r.Path, r.Result.Bag.ErrorCount())
			diagfmt.Pretty(cmd.ErrOrStderr(), r.Result.Bag, r.Result.FileSet,
				diagfmt.PrettyOpts{Color: colored, Context: 2})
		default:
			fmt.Fprintf(out, "%s: ok (%d tokens)\n", r.Path, len(r.Result.Tokens))
		}
	}
	fmt.Fprintf(out, "checked %d file(s)\n", len(results))

	if hadErrors {
		return &exitError{code: exitDataErr}
	}
	return nil
}
