package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names.
const (
	keyAPI     = "api"
	keyList    = "list"
	keyLogging = "logging"
	keySession = "session"
)

// knownTopLevelKeys lists the YAML keys that correspond to Config sections.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyAPI:     true,
	keyList:    true,
	keyLogging: true,
	keySession: true,
}

// LoadResult is a loaded configuration plus anything worth telling the user about it.
type LoadResult struct {
	Config *Config
	// Found is false when no file existed and defaults were used.
	Found bool
	// UnknownKeys lists top-level keys that were present in the file but ignored.
	UnknownKeys []string
}

// Load reads the config file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (LoadResult, error) {
	cfg := New()
	result := LoadResult{Config: cfg}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, nil
		}
		return result, fmt.Errorf("reading config file %s: %w", path, err)
	}
	result.Found = true

	unknown, err := MergeYAML(cfg, data)
	if err != nil {
		return result, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	result.UnknownKeys = unknown
	return result, nil
}

// MergeYAML merges the sections present in data onto target. Within a section,
// keys absent from data keep their current value. Unknown top-level keys are
// returned sorted and otherwise ignored.
func MergeYAML(target *Config, data []byte) ([]string, error) {
	if target == nil {
		return nil, errors.New("nil target *Config in MergeYAML")
	}

	var overlay map[string]yaml.Node
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, err
	}

	var unknown []string
	for key, node := range overlay {
		if !knownTopLevelKeys[key] {
			unknown = append(unknown, key)
			continue
		}
		if err := decodeSection(target, key, &node); err != nil {
			return nil, fmt.Errorf("section %q: %w", key, err)
		}
	}
	sort.Strings(unknown)
	return unknown, nil
}

// decodeSection decodes node onto the matching section of target.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyAPI:
		return node.Decode(&target.API)
	case keyList:
		return node.Decode(&target.List)
	case keyLogging:
		return node.Decode(&target.Logging)
	case keySession:
		return node.Decode(&target.Session)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

// Save writes cfg to path as YAML, creating the parent directory.
func Save(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// Marshal renders cfg as YAML. The API token is never included.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}
