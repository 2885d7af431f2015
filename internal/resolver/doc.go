// Package resolver decides the final value of every declared configuration
// field for one component: the override from the shared override file when one
// is present, the declared default otherwise.
//
// The engine runs once per build invocation, synchronously:
//
//	Start -> PathResolved|PathMissing -> OverridesLoaded|OverridesAbsent
//	      -> (strict check) -> FieldsResolved -> Done
//
// Absence is graceful everywhere. An undiscoverable root, a missing override
// file and a component missing from the table all narrow the source of truth
// to defaults. Under strict mode each of those conditions is instead fatal
// (StrictViolationError), certifying that an override source was found and
// parsed even if no field was actually overridden.
//
// Type reconciliation is never lenient: an override literal that cannot be
// reconciled with the field's declared type aborts resolution with a
// field-scoped TypeMismatchError. No partial configuration is ever produced.
//
// All build-supplied inputs arrive through an explicit BuildContext; the
// engine reads no ambient process state.
package resolver
