// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultDefs []byte

// Default returns the built-in definitions.
func Default() (*Library, error) {
	return Parse(defaultDefs, ".yaml")
}

// Load reads a definitions file. The format is chosen by extension:
// .json, .yaml or .yml.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Parse decodes definitions in the format named by ext.
func Parse(data []byte, ext string) (*Library, error) {
	var lib Library
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &lib); err != nil {
			return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &lib); err != nil {
			return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err := lib.index(); err != nil {
		return nil, err
	}
	return &lib, nil
}
