// Package emit turns a resolved configuration value set into a generated Go
// source file that the consuming component compiles in.
//
// The emitted file declares a Config struct with one field per schema entry,
// in declaration order, and a CONFIG value carrying the resolved values.
// Scalar fields become Go literals; variant fields become identifier
// references of the form <EnumType><VariantName>, which the consuming package
// is expected to declare.
package emit
