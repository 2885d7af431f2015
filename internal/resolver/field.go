package resolver

import (
	"cfgen/internal/overrides"
	"cfgen/internal/schema"
)

// ResolveField decides the final value of one schema field: the component's
// override when one is present, the declared default otherwise. present
// reports whether an override sub-table was obtained at all; a false value
// (or a field name absent from the table) always yields the default.
//
// Reconciliation is type-aware. Scalar overrides must already carry the
// declared kind (integer literals widen to float, nothing else converts).
// Variant-typed fields accept only a string exactly naming a declared variant
// and resolve to a reference to that variant, never to the literal string.
func ResolveField(field schema.Field, comp overrides.Component, present bool) (ResolvedField, error) {
	raw := field.Default
	source := SourceDefault
	if present {
		if v, ok := comp.Value(field.Name); ok {
			raw = v
			source = SourceOverride
		}
	}

	if source == SourceDefault && raw == nil {
		return ResolvedField{}, &MissingDefaultError{Field: field.Name}
	}

	checked, err := field.Type.Check(raw)
	if err != nil {
		return ResolvedField{}, &TypeMismatchError{
			Field:    field.Name,
			Expected: field.Type.String(),
			Literal:  raw,
			Detail:   err.Error(),
		}
	}

	resolved := ResolvedField{Name: field.Name, Type: field.Type, Source: source, Doc: field.Doc}
	if field.Type.IsVariant() {
		resolved.Value = Value{Enum: field.Type.Enum, Variant: checked.(string)}
	} else {
		resolved.Value = Value{Literal: checked}
	}
	return resolved, nil
}
