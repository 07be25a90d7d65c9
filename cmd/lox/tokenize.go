package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lox/internal/diagfmt"
	"lox/internal/driver"
	"lox/internal/project"
)

// lexErrorExitCode is the wire contract consumers rely on: any recorded
// lexical error maps to exit code 65, a clean scan to 0.
const lexErrorExitCode = 65

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.lox...]",
	Short: "Tokenize Lox source files",
	Long: `Tokenize breaks Lox source files into their constituent tokens.
Tokens go to stdout, diagnostics to stderr; the process exits with code 65
if any lexical error was recorded. With no arguments, the entry file of the
nearest lox.toml project is tokenized.`,
	Args: cobra.ArbitraryArgs,
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "plain", "token output format (plain|pretty|json)")
	tokenizeCmd.Flags().String("diag-format", "plain", "diagnostic output format (plain|pretty)")
	tokenizeCmd.Flags().Bool("cached", false, "reuse cached scans for unchanged files")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	diagFormat, err := cmd.Flags().GetString("diag-format")
	if err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	cached, err := cmd.Flags().GetBool("cached")
	if err != nil {
		return fmt.Errorf("failed to get cached flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	paths := args
	if len(paths) == 0 {
		manifest, ok, err := project.Load(".")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no %s found\nplease specify a file explicitly, e.g.:\n  lox tokenize main.lox", project.ManifestName)
		}
		paths = []string{manifest.EntryFile()}
	}

	results, err := collectResults(paths, maxDiagnostics, cached)
	if err != nil {
		return err
	}

	hadErrors := false
	for _, result := range results {
		if result.Bag.Len() > 0 {
			result.Bag.Sort()
			switch diagFormat {
			case "plain":
				if err := diagfmt.Plain(os.Stderr, result.Bag, result.FileSet); err != nil {
					return err
				}
			case "pretty":
				opts := diagfmt.PrettyOpts{
					Color:   useColor(cmd, os.Stderr),
					Context: true,
				}
				if err := diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown diag-format: %s", diagFormat)
			}
		}

		switch format {
		case "plain":
			err = diagfmt.Tokens(os.Stdout, result.Tokens)
		case "pretty":
			err = diagfmt.TokensPretty(os.Stdout, result.Tokens, result.FileSet)
		case "json":
			err = diagfmt.TokensJSON(os.Stdout, result.Tokens)
		default:
			err = fmt.Errorf("unknown format: %s", format)
		}
		if err != nil {
			return err
		}

		if result.HasErrors() {
			hadErrors = true
		}
	}

	if hadErrors {
		os.Exit(lexErrorExitCode)
	}
	return nil
}

func collectResults(paths []string, maxDiagnostics int, cached bool) ([]*driver.TokenizeResult, error) {
	if !cached {
		return driver.TokenizeAll(paths, maxDiagnostics)
	}

	cache, err := driver.OpenTokenCache("lox")
	if err != nil {
		return nil, err
	}
	results := make([]*driver.TokenizeResult, 0, len(paths))
	for _, path := range paths {
		result, _, err := driver.TokenizeCached(path, maxDiagnostics, cache)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
