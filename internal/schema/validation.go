package schema

import (
	"fmt"
	"strings"
)

// ValidationError represents a schema validation error with field context.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("schema validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors.
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error.
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// isFieldName reports whether s is a legal field name: lower snake_case
// starting with a letter. Field names become exported Go identifiers in the
// emitted source, so the character set is deliberately narrow.
func isFieldName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '_' && i > 0:
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// isGoIdentifier reports whether s is a plain ASCII Go identifier. Used for
// enum type names and variant names, which are emitted verbatim.
func isGoIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Validate checks the schema's authoring contract: unique well-formed field
// names, a legal type classification per field, and exactly one default per
// field, convertible to the declared type. It returns all violations at once.
func (s *Schema) Validate() error {
	var errs ValidationErrors

	if !isFieldName(s.Package) {
		errs.Add("", fmt.Sprintf("package %q is not a valid component name", s.Package), s.Package)
	}
	if len(s.Fields) == 0 {
		errs.Add("", "schema declares no fields")
	}

	seen := make(map[string]bool)
	for _, f := range s.Fields {
		if !isFieldName(f.Name) {
			errs.Add(f.Name, "is not a valid field name (want lower snake_case)")
			continue
		}
		if seen[f.Name] {
			errs.Add(f.Name, "is declared more than once")
			continue
		}
		seen[f.Name] = true

		if f.Type.IsVariant() {
			if !isGoIdentifier(f.Type.Enum) {
				errs.Add(f.Name, fmt.Sprintf("enum type %q is not a valid identifier", f.Type.Enum))
			}
			if len(f.Type.Variants) == 0 {
				errs.Add(f.Name, "variant field declares no variants")
			}
			vseen := make(map[string]bool)
			for _, v := range f.Type.Variants {
				if !isGoIdentifier(v) {
					errs.Add(f.Name, fmt.Sprintf("variant %q is not a valid identifier", v))
				}
				if vseen[v] {
					errs.Add(f.Name, fmt.Sprintf("variant %q is declared more than once", v))
				}
				vseen[v] = true
			}
		}

		// Every declared field must carry exactly one default. A missing
		// default is a schema-authoring contract violation.
		if f.Default == nil {
			errs.Add(f.Name, "is missing a default value")
			continue
		}
		if _, err := f.Type.Check(f.Default); err != nil {
			errs.Add(f.Name, fmt.Sprintf("default is incompatible with declared type: %v", err), f.Default)
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
