package types

// ID is a dense, zero-based parameter identifier. An ID's ordinal value is
// also its index in the handler table built by Builder.Build; the two must
// never drift. Applications declare their IDs with iota and register a codec
// for every ordinal.
type ID uint16

// StorageClass tags where a parameter's value physically lives.
type StorageClass uint8

// Supported storage classes. Only volatile in-memory storage is implemented;
// the classification exists so persistent backends can be added without
// changing codec declarations.
const (
	StorageVolatile StorageClass = iota
)

// String returns the storage class name for display.
func (s StorageClass) String() string {
	switch s {
	case StorageVolatile:
		return "volatile"
	default:
		return "unknown"
	}
}

// Meta describes one registered value type: a display name, a short machine
// key (unique across the registry, used by external tooling to resolve IDs),
// and the storage classification.
type Meta struct {
	Name    string
	Key     string
	Storage StorageClass
}

// Codec binds behavior to one value type T. Implement it once per value type
// and register it with Register; the registry converts it into a type-erased
// Handler so all access can be dispatched by ID.
//
// Default must return a value that satisfies Validate. Build rejects codecs
// whose default fails validation.
type Codec[T any] interface {
	// Meta returns the codec's descriptive metadata.
	Meta() Meta

	// Default returns the initial value committed by Store.Restore.
	Default() T

	// Validate reports whether v lies within the type's accepted domain.
	// It must be pure: no side effects, same answer for the same value.
	Validate(v T) bool
}

// TextParser is an optional Codec capability for parsing a text token into
// a value. Parse success does not imply domain validity: the store always
// validates independently before committing a parsed value.
type TextParser[T any] interface {
	Parse(text string) (T, error)
}

// TextFormatter is an optional Codec capability for rendering a value as
// text in the type's fixed numeric format.
type TextFormatter[T any] interface {
	Format(v T) string
}
