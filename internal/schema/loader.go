package schema

import (
	"errors"
	"fmt"
	"os"

	"cfgen/pkg/logging"

	"gopkg.in/yaml.v3"
)

// DefaultManifestName is the schema manifest filename looked for next to the
// component's source when no explicit path is given.
const DefaultManifestName = "cfgen.yaml"

type fieldManifest struct {
	Name     string     `yaml:"name"`
	Type     string     `yaml:"type"`
	Variants []string   `yaml:"variants,omitempty"`
	Default  yaml.Node  `yaml:"default,omitempty"`
	Doc      string     `yaml:"doc,omitempty"`
}

type manifest struct {
	Package string          `yaml:"package"`
	Fields  []fieldManifest `yaml:"fields"`
}

// Load reads and validates a schema manifest from path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema manifest %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schema manifest %s: %w", path, err)
	}
	logging.Debug("Schema", "Loaded %d fields from %s", len(s.Fields), path)
	return s, nil
}

// Parse decodes and validates a schema manifest. All validation violations are
// collected and reported together.
func Parse(data []byte) (*Schema, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing schema manifest: %w", err)
	}

	var errs ValidationErrors
	s := &Schema{Package: m.Package}
	for _, fm := range m.Fields {
		f := Field{Name: fm.Name, Doc: fm.Doc}

		switch {
		case fm.Type == "":
			errs.Add(fm.Name, "is missing a type")
		case isScalarKind(fm.Type):
			if len(fm.Variants) > 0 {
				errs.Add(fm.Name, fmt.Sprintf("scalar field of kind %s must not declare variants", fm.Type))
			}
			f.Type = TypeTag{Scalar: scalarKinds[fm.Type]}
		default:
			// Any non-reserved type name declares a named-variant field.
			f.Type = TypeTag{Enum: fm.Type, Variants: fm.Variants}
		}

		if !fm.Default.IsZero() {
			v, err := decodeLiteral(&fm.Default)
			if err != nil {
				errs.Add(fm.Name, fmt.Sprintf("default is not a literal: %v", err))
			} else {
				f.Default = v
			}
		}

		s.Fields = append(s.Fields, f)
	}

	if err := s.Validate(); err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) {
			errs = append(errs, verrs...)
		} else {
			return nil, err
		}
	}
	if errs.HasErrors() {
		return nil, errs
	}
	return s, nil
}

func isScalarKind(name string) bool {
	_, ok := scalarKinds[name]
	return ok
}

// decodeLiteral decodes a YAML node into an untyped literal, normalizing
// integers to int64.
func decodeLiteral(node *yaml.Node) (any, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case string, int64, float64, bool, nil:
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported literal of type %T", v)
	}
}
