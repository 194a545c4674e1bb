package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// stateIgnore keeps credentials and logs out of dotfile repositories that
// track the config directory.
const stateIgnore = `# licensedesk local state (auto-generated)
# config.yaml may be tracked; the session token and logs must not be.
session.json
session.json.tmp
logs/
*.log
`

// StateIgnore returns the .gitignore content written next to config.yaml.
func StateIgnore() string {
	return stateIgnore
}

// EnsureStateIgnore writes a .gitignore into dir unless one exists.
// It reports whether a file was created and never overwrites.
func EnsureStateIgnore(dir string) (bool, error) {
	path := filepath.Join(dir, ".gitignore")

	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}

	if err = os.MkdirAll(dir, 0o750); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}
	//nolint:gosec // .gitignore is not secret.
	if err = os.WriteFile(path, []byte(stateIgnore), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
