// Package types defines the parameter registry core for the Knobs system:
// per-type codecs, the identifier-indexed handler table, typed handles,
// the Store interface, and standard error types.
package types
