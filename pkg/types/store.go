package types

import "errors"

// Store operation errors. All are recoverable by the caller; no failed
// operation leaves a store partially mutated.
var (
	ErrOutOfRange   = errors.New("value outside accepted domain")
	ErrSizeMismatch = errors.New("byte length does not match registered size")
	ErrNotPresent   = errors.New("parameter has never been set")
	ErrShortBuffer  = errors.New("destination buffer too small")
)

// Store holds one value slot per registered parameter and enforces the
// commit discipline: parse (for text), then validate, then copy — never the
// reverse. Any failure leaves the target slot untouched, including the
// initial "never set" state. There is no unset operation; a slot stays
// present once a set succeeds.
//
// A Store holds no internal synchronization. It is safe for any number of
// concurrent readers of the immutable Registry, but mutation requires a
// single writer or external locking.
type Store interface {
	// SetText parses and validates a text token for id, then commits it.
	// Returns ErrNotTextual when the codec has no parser, an ErrParse
	// wrapping error when the token does not parse, and ErrOutOfRange
	// when the parsed value fails domain validation.
	SetText(id ID, text string) error

	// FormatText renders the current value of id in its fixed text form.
	// Returns ErrNotTextual when the codec has no formatter and
	// ErrNotPresent when the slot has never been set.
	FormatText(id ID) (string, error)

	// GetText renders the current value of id into dst and returns the
	// number of bytes written. When dst is too small, it writes nothing
	// and returns the required length along with ErrShortBuffer.
	GetText(id ID, dst []byte) (int, error)

	// SetRaw validates encoded value bytes and commits them. Returns
	// ErrSizeMismatch when len(data) differs from the registered size
	// and ErrOutOfRange when the decoded value fails validation.
	SetRaw(id ID, data []byte) error

	// GetRaw copies the current encoded value of id into dst and returns
	// the number of bytes copied. Returns ErrNotPresent for a slot that
	// has never been set and ErrShortBuffer (with the required length)
	// when dst is too small.
	GetRaw(id ID, dst []byte) (int, error)

	// Restore commits the registered default value for id.
	Restore(id ID) error

	// RestoreAll commits the registered default value for every id.
	RestoreAll() error

	// Present reports whether id has ever been successfully set.
	Present(id ID) bool

	// Registry returns the handler table this store was built against.
	Registry() *Registry
}
