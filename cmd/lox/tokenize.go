package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lox/internal/diagfmt"
	"lox/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lox",
	Short: "Tokenize a Lox source file",
	Long:  `Tokenize breaks a Lox source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	cfg, err := loadToolConfig(".")
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics(cmd, cfg))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// diagnostics follow the requested format: human-readable snippets for
	// pretty, a machine-readable document for json
	switch format {
	case "pretty":
		if result.Bag.Len() > 0 {
			opts := diagfmt.PrettyOpts{Color: useColor(cmd, cfg, os.Stderr), Context: 2}
			diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, opts)
		}
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	case "json":
		if result.Bag.Len() > 0 {
			if err := diagfmt.JSON(cmd.ErrOrStderr(), result.Bag, result.FileSet); err != nil {
				return err
			}
		}
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
