package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lox/internal/version"
)

// sysexits(3) codes the driver contract promises.
const (
	exitUsage   = 64 // command line usage error
	exitDataErr = 65 // input had lexical errors
)

// exitError carries a process exit status through cobra's error plumbing
// so os.Exit is called in exactly one place.
type exitError struct{ code int }

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

var rootCmd = &cobra.Command{
	Use:   "lox [script.lox]",
	Short: "Lox language scanner and toolchain",
	Long: `Lox tokenizes Lox source files and reports lexical errors.

With a script argument it scans the file once and exits 65 if any lexical
error was found. With no argument it starts an interactive prompt where
each line is scanned independently.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
}

func main() {
	rootCmd.Version = version.Version

	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// runRoot implements the classic driver entry: no args starts the REPL,
// one arg scans a script in batch mode, anything more is a usage error.
func runRoot(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return runPrompt(cmd)
	case 1:
		return runScript(cmd, args[0])
	default:
		fmt.Fprintln(cmd.ErrOrStderr(), "Usage: lox [script.lox]")
		return &exitError{code: exitUsage}
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the config file default and
// the terminal state of f.
func useColor(cmd *cobra.Command, cfg *toolConfig, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	if colorFlag == "auto" && cfg != nil && cfg.Output.Color != "" {
		colorFlag = cfg.Output.Color
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

// maxDiagnostics resolves the --max-diagnostics flag against the config
// file default.
func maxDiagnostics(cmd *cobra.Command, cfg *toolConfig) int {
	flags := cmd.Root().PersistentFlags()
	if !flags.Changed("max-diagnostics") && cfg != nil && cfg.Output.MaxDiagnostics > 0 {
		return cfg.Output.MaxDiagnostics
	}
	n, _ := flags.GetInt("max-diagnostics")
	return n
}
