package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the project manifest file looked up from the working
// directory upwards.
const ManifestName = "lox.toml"

// Manifest is a located, decoded lox.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the lox.toml layout.
type Config struct {
	Package  PackageConfig  `toml:"package"`
	Tokenize TokenizeConfig `toml:"tokenize"`
}

// PackageConfig names the project.
type PackageConfig struct {
	Name string `toml:"name"`
}

// TokenizeConfig configures the default tokenize run.
type TokenizeConfig struct {
	Main string `toml:"main"`
}

// Find walks from startDir to the filesystem root looking for lox.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the nearest manifest. The second result is false
// when no manifest exists between startDir and the root.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := decode(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// EntryFile returns the manifest's tokenize entry resolved against the
// project root, defaulting to main.lox.
func (m *Manifest) EntryFile() string {
	entry := m.Config.Tokenize.Main
	if entry == "" {
		entry = "main.lox"
	}
	if filepath.IsAbs(entry) {
		return entry
	}
	return filepath.Join(m.Root, entry)
}

func decode(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package] section", path)
	}
	if cfg.Package.Name == "" {
		return Config{}, fmt.Errorf("%s: package.name must not be empty", path)
	}
	return cfg, nil
}
