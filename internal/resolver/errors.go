package resolver

import "fmt"

// TypeMismatchError reports an override literal that cannot be reconciled with
// the field's declared type. Always fatal and field-scoped; resolution never
// coerces across incompatible kinds or guesses a fallback variant.
type TypeMismatchError struct {
	Field    string
	Expected string
	Literal  any
	Detail   string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field '%s': %s (declared type %s, offending literal %#v)",
		e.Field, e.Detail, e.Expected, e.Literal)
}

// MissingDefaultError reports a field that reached resolution without a
// default value. Every declared field must carry exactly one default; this is
// a schema-authoring contract violation.
type MissingDefaultError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingDefaultError) Error() string {
	return fmt.Sprintf("field '%s': no default value declared", e.Field)
}

// StrictViolationError reports that strict mode was set but no valid override
// source was obtained. Reason names the condition; Path, when known, names the
// missing or unusable file.
type StrictViolationError struct {
	Reason string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *StrictViolationError) Error() string {
	msg := "strict mode: " + e.Reason
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause, if any.
func (e *StrictViolationError) Unwrap() error {
	return e.Err
}
