// Package schema loads and validates the configuration schema manifest that a
// component declares next to its source (cfgen.yaml by default).
//
// A manifest names the component's package and lists its configuration fields
// in declaration order. Every field carries an explicit type classification and
// a default literal:
//
//	package: compa
//	fields:
//	  - name: buffer_size
//	    type: int
//	    default: 32
//	  - name: greeting
//	    type: string
//	    default: hello
//	  - name: choice
//	    type: Choice
//	    variants: [One, Other]
//	    default: One
//
// Scalar fields use one of the reserved kind names (string, int, float, bool).
// Any other type name declares a named-variant field: the type is an enumerated
// Go type and the value is one of the listed variant names. The classification
// is always explicit in the manifest; it is never inferred from the shape of
// the default value.
//
// Loading is strict. A manifest that omits a default, declares a default
// incompatible with the field's type, or names an unknown variant is rejected
// with a ValidationError identifying the offending field. Declaration order is
// preserved because it determines the order of the emitted output.
package schema
