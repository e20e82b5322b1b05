// Package knobs holds project-level metadata shared by the CLI and tests.
package knobs

// Version is the current release version of the knobs module.
const Version = "0.1.0"
