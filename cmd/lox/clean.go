package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lox/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the on-disk token cache",
	Long:  "Remove every cached scan result stored by `lox tokenize --cached`.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	cache, err := driver.OpenTokenCache("lox")
	if err != nil {
		return err
	}
	if err := cache.Clear(); err != nil {
		return fmt.Errorf("failed to clear %q: %w", cache.Dir(), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", cache.Dir())
	return nil
}
