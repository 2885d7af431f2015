package schema

import (
	"fmt"
	"strings"
)

// ScalarKind identifies one of the scalar types a field may declare.
type ScalarKind string

const (
	ScalarString ScalarKind = "string"
	ScalarInt    ScalarKind = "int"
	ScalarFloat  ScalarKind = "float"
	ScalarBool   ScalarKind = "bool"
)

// scalarKinds is the set of reserved scalar type names in a manifest.
var scalarKinds = map[string]ScalarKind{
	"string": ScalarString,
	"int":    ScalarInt,
	"float":  ScalarFloat,
	"bool":   ScalarBool,
}

// TypeTag is the explicit type classification of a field. Exactly one of the
// two classifications applies: a scalar of a fixed kind, or a named variant of
// an enumerated type.
type TypeTag struct {
	Scalar ScalarKind // set for scalar fields, empty otherwise

	Enum     string   // enum type name, variant fields only
	Variants []string // legal variant names, variant fields only
}

// IsVariant reports whether the field is a named-variant field.
func (t TypeTag) IsVariant() bool {
	return t.Enum != ""
}

// String returns a human-readable description of the type, used in error
// messages and diagnostic output.
func (t TypeTag) String() string {
	if t.IsVariant() {
		return fmt.Sprintf("variant of %s", t.Enum)
	}
	return string(t.Scalar)
}

// HasVariant reports whether name exactly matches one of the declared variant
// names.
func (t TypeTag) HasVariant(name string) bool {
	for _, v := range t.Variants {
		if v == name {
			return true
		}
	}
	return false
}

// Check reconciles an untyped literal against the type tag. On success it
// returns the normalized value: string, int64, float64 or bool for scalar
// fields, and the variant name string for variant fields. The returned error
// describes the expectation only; callers attach field context.
func (t TypeTag) Check(raw any) (any, error) {
	if t.IsVariant() {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string naming a variant of %s, got %s", t.Enum, literalKind(raw))
		}
		if !t.HasVariant(s) {
			return nil, fmt.Errorf("%q is not a variant of %s (known: %s)", s, t.Enum, strings.Join(t.Variants, ", "))
		}
		return s, nil
	}

	switch t.Scalar {
	case ScalarString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case ScalarInt:
		switch v := raw.(type) {
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		}
	case ScalarFloat:
		// Integer literals are valid float values.
		switch v := raw.(type) {
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case float64:
			return v, nil
		}
	case ScalarBool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	}
	return nil, fmt.Errorf("expected %s, got %s", t.Scalar, literalKind(raw))
}

// literalKind names the dynamic kind of an untyped literal for error messages.
func literalKind(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case int, int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", raw)
	}
}

// Field is one declared configuration entry: a name, an explicit type
// classification and a default literal. After validation the default is always
// present and normalized to the field's type.
type Field struct {
	Name    string
	Type    TypeTag
	Default any
	Doc     string
}

// Schema is the ordered set of fields one component declares.
type Schema struct {
	// Package is the component's package name. It doubles as the default
	// component identity when looking up overrides.
	Package string
	Fields  []Field
}
