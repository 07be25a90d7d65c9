package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lox/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new lox project",
	Long: `Initialize a new lox project by creating a project manifest (lox.toml)
and a hello-world entry point (main.lox). If [path|name] is omitted, the
current directory is initialized. If a non-existing name is provided, a
directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := projectNameFor(filepath.Base(target))

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists in %q", project.ManifestName, target)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	manifest := fmt.Sprintf("[package]\nname = %q\n\n[tokenize]\nmain = \"main.lox\"\n", name)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", project.ManifestName, err)
	}

	entryPath := filepath.Join(target, "main.lox")
	entry := "// hello, lox\n(\"hello\");\n"
	if err := os.WriteFile(entryPath, []byte(entry), 0o644); err != nil {
		return fmt.Errorf("failed to write main.lox: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s\ncreated %s\n", manifestPath, entryPath)
	return nil
}

// projectNameFor derives a manifest package name from a directory basename,
// falling back to "lox-project" when the basename is unusable.
func projectNameFor(base string) string {
	name := strings.TrimSpace(base)
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "lox-project"
	}
	return name
}
