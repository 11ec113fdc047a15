package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lox/internal/diagfmt"
	"lox/internal/driver"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive scanner prompt",
	Long: `Read one line at a time, scan it with fresh scanner state, and print
the resulting tokens. A lexical error on one line never degrades the
session; the error state resets with every line. An empty line or
end-of-input ends the session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrompt(cmd)
	},
}

// runScript scans one file in batch mode: diagnostics go to stderr and
// any lexical error terminates the process with exit status 65.
func runScript(cmd *cobra.Command, path string) error {
	cfg, err := loadToolConfig(".")
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(path, maxDiagnostics(cmd, cfg))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, cfg, os.Stderr), Context: 2}
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, opts)
	}
	if result.Bag.HasErrors() {
		return &exitError{code: exitDataErr}
	}
	return nil
}

// runPrompt is the interactive driver. Every line gets its own scanner
// and its own diagnostics bag, so a mistake on one line cannot leak into
// the next.
func runPrompt(cmd *cobra.Command) error {
	cfg, err := loadToolConfig(".")
	if err != nil {
		return err
	}
	prompt := "> "
	if cfg != nil && cfg.Repl.Prompt != "" {
		prompt = cfg.Repl.Prompt
	}

	in := bufio.NewScanner(os.Stdin)
	out := cmd.OutOrStdout()
	colored := useColor(cmd, cfg, os.Stderr)
	maxDiags := maxDiagnostics(cmd, cfg)

	lineNo := 0
	for {
		fmt.Fprint(out, prompt)
		if !in.Scan() {
			// end of input terminates the session normally
			fmt.Fprintln(out)
			return in.Err()
		}
		line := in.Text()
		if line == "" {
			return nil
		}
		lineNo++

		name := fmt.Sprintf("repl:%d", lineNo)
		result := driver.TokenizeSource(name, []byte(line), maxDiags)

		if result.Bag.Len() > 0 {
			opts := diagfmt.PrettyOpts{Color: colored}
			diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, opts)
		}
		if err := diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet); err != nil {
			return err
		}
	}
}
