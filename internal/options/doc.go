// Package options owns the catalog of options torc recognizes and the
// bridge between that catalog and the command-line flag set.
//
// The Schema function is the single source of truth for option names, value
// shapes, and defaults. Bind registers a matching pflag flag per option, and
// Collect reads back only the flags the user actually set, so the resolver
// can distinguish explicit command-line input from flag defaults.
package options
