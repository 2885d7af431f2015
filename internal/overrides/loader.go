package overrides

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cfgen/pkg/logging"

	"github.com/pelletier/go-toml/v2"
)

// OverrideFileName is the fixed name of the shared override file at the
// project root.
const OverrideFileName = "cfg.toml"

// Component is one component's override sub-table: field name to untyped
// literal (string, int64, float64, bool). A key that is absent means "no
// override for this field". An empty Component is valid and distinct from an
// absent one.
type Component map[string]any

// Value returns the raw override literal for a field name.
func (c Component) Value(name string) (any, bool) {
	v, ok := c[name]
	return v, ok
}

// Table is the parsed override file, keyed by component identity. It is built
// once per resolution pass and never mutated afterwards.
type Table struct {
	// Path is the override file the table was loaded from.
	Path string

	Components map[string]Component
}

// Component returns the override sub-table for the given component identity.
// The second return reports presence; a present-but-empty table is valid.
func (t *Table) Component(id string) (Component, bool) {
	if t == nil {
		return nil, false
	}
	c, ok := t.Components[id]
	return c, ok
}

// LoadTable reads and parses the override file under root.
//
// A missing file yields (nil, nil): there is simply no override data. A file
// that exists but cannot be read or parsed yields an error; the caller decides
// whether to degrade to defaults or fail. Component identities are unique
// within one file because the TOML format rejects redefined tables, so
// duplicates surface deterministically as a parse error.
func LoadTable(root string) (*Table, error) {
	path := filepath.Join(root, OverrideFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Overrides", "No %s at %s, no override data", OverrideFileName, root)
			return nil, nil
		}
		return nil, fmt.Errorf("reading override file %s: %w", path, err)
	}

	var raw map[string]map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing override file %s: %w", path, err)
	}

	components := make(map[string]Component, len(raw))
	for id, fields := range raw {
		c := make(Component, len(fields))
		for name, value := range fields {
			c[name] = value
		}
		components[id] = c
	}

	logging.Debug("Overrides", "Loaded override tables for %d components from %s", len(components), path)
	return &Table{Path: path, Components: components}, nil
}
