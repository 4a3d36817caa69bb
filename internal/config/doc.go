// Package config parses, validates, and combines torc configuration data.
//
// Resolution is a fixed three-stage pipeline: Parse turns the INI-style
// configuration file into an untyped File, Validate checks every entry
// against the option Schema and coerces single assignments of multi-value
// options, and Combine merges explicit command-line values, file values,
// selected profiles, and schema defaults into one flat mapping with exactly
// one entry per schema option.
//
// Each stage is a pure transformation of its inputs; the only side effect in
// the package is the whole-file read in ParseFile. Every resolution failure
// is reported as an *Error that callers print verbatim before exiting with a
// non-zero status.
package config
