// Package rates - override file loading
package rates

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"payment-cost/internal/errors"
)

// Load reads a rates override file and returns the default table with the
// overrides applied. JSON and HCL are supported, dispatched on extension.
// A missing path returns the defaults untouched.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	overrides, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	return Default().Apply(overrides), nil
}

// LoadOverrides parses an override file without applying it.
func LoadOverrides(path string) (*Overrides, error) {
	var overrides Overrides

	if strings.HasSuffix(path, ".hcl") {
		if err := hclsimple.DecodeFile(path, nil, &overrides); err != nil {
			return nil, errors.Rates("failed to parse HCL rates file "+path, err)
		}
		return &overrides, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Rates("failed to read rates file "+path, err)
	}
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, errors.Rates("failed to parse rates file "+path, err)
	}
	return &overrides, nil
}

// Save writes the full table as JSON, the persisted flat shape for
// user-edited rates.
func (t *Table) Save(path string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return errors.Internal("failed to encode rates", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Rates("failed to create rates directory", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Rates("failed to write rates file "+path, err)
	}
	return nil
}
