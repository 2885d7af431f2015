package resolver

import (
	"fmt"
	"strconv"

	"cfgen/internal/schema"
)

// Source records where a resolved value came from.
type Source string

const (
	SourceDefault  Source = "default"
	SourceOverride Source = "override"
)

// Value is a resolved field value: a scalar literal, or a reference to a named
// variant of an enumerated type. Variant values carry the type name and the
// variant name, never the override's literal string.
type Value struct {
	Literal any // scalar fields: string, int64, float64 or bool

	Enum    string // variant fields: enum type name
	Variant string // variant fields: variant name
}

// IsVariant reports whether the value is a variant reference.
func (v Value) IsVariant() bool {
	return v.Enum != ""
}

// GoExpr renders the value as a Go expression for the emitted source: a quoted
// string, a numeric or boolean literal, or the identifier <Enum><Variant> for
// variant references.
func (v Value) GoExpr() string {
	if v.IsVariant() {
		return v.Enum + v.Variant
	}
	switch t := v.Literal.(type) {
	case string:
		return strconv.Quote(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", v.Literal)
	}
}

// String returns the diagnostic form used in tables and log output.
func (v Value) String() string {
	if v.IsVariant() {
		return v.Enum + "." + v.Variant
	}
	return fmt.Sprintf("%v", v.Literal)
}

// ResolvedField is one entry of the final configuration value set.
type ResolvedField struct {
	Name   string
	Type   schema.TypeTag
	Value  Value
	Source Source

	// Doc carries the field's documentation string through to emission.
	Doc string
}

// Config is the resolved configuration for one component, one entry per
// declared field in declaration order. It is handed to the emission
// collaborator and then discarded; nothing outlives the build invocation.
type Config struct {
	// Component is the identity the override sub-table was selected by.
	Component string
	// Package is the schema's declared package name, used by emission.
	Package string

	Fields []ResolvedField
}

// Overridden counts the fields whose value came from the override table.
func (c *Config) Overridden() int {
	n := 0
	for _, f := range c.Fields {
		if f.Source == SourceOverride {
			n++
		}
	}
	return n
}
