package cfgpath

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed sample_config.ini
var sampleConfig string

const defaultRelPath = "~/.config/torc/config"

// Default returns the absolute path of the default configuration file.
func Default() (string, error) {
	return Expand(defaultRelPath)
}

// Resolve returns the configuration file to read and whether it exists. An
// empty path selects the default location; a missing default file is not an
// error, only a missing explicitly-named file is reported by the caller.
func Resolve(path string) (string, bool, error) {
	target := strings.TrimSpace(path)
	if target == "" {
		target = defaultRelPath
	}
	expanded, err := Expand(target)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", expanded)
	}
	return expanded, true, nil
}

// Expand resolves a leading tilde against the home directory and returns an
// absolute, cleaned path.
func Expand(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			path = home
		} else if len(path) > 1 && (path[1] == '/' || path[1] == '\\') {
			path = filepath.Join(home, path[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", path, err)
	}
	return absolute, nil
}

// WriteSample writes the embedded sample configuration to path, creating
// parent directories as needed.
func WriteSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
