package types

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
)

// Registration errors returned by Register and Builder.Build.
var (
	ErrIDRegistered   = errors.New("identifier already registered")
	ErrIDGap          = errors.New("identifier ordinals are not dense")
	ErrDuplicateKey   = errors.New("machine key already registered")
	ErrDefaultInvalid = errors.New("default value fails validation")
	ErrUnsizedType    = errors.New("value type has no fixed byte size")
	ErrEmptyRegistry  = errors.New("no parameters registered")
)

// Builder accumulates codec registrations before the handler table is built.
// Register every ID exactly once, then call Build.
type Builder struct {
	entries map[ID]*Handler
}

// NewBuilder returns an empty registration builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[ID]*Handler)}
}

// Register binds codec c to id, converting its typed operations into the
// type-erased Handler form. The codec's default value is encoded once here
// and must satisfy its own Validate; a failing default is a registration
// error, not a runtime condition.
func Register[T any](b *Builder, id ID, c Codec[T]) error {
	if _, ok := b.entries[id]; ok {
		return fmt.Errorf("%w: id %d", ErrIDRegistered, id)
	}

	var zero T
	size := binary.Size(zero)
	if size <= 0 {
		return fmt.Errorf("%w: %T", ErrUnsizedType, zero)
	}

	def := c.Default()
	if !c.Validate(def) {
		return fmt.Errorf("%w: %s", ErrDefaultInvalid, c.Meta().Key)
	}
	defRaw, err := encodeValue(def)
	if err != nil {
		return fmt.Errorf("%w: %T: %v", ErrUnsizedType, zero, err)
	}

	h := &Handler{
		meta:       c.Meta(),
		size:       size,
		typ:        reflect.TypeOf((*T)(nil)).Elem(),
		defaultRaw: defRaw,
		validate: func(raw []byte) bool {
			v, err := decodeValue[T](raw)
			return err == nil && c.Validate(v)
		},
	}

	// Text behavior is an optional capability; handlers without it reject
	// text operations with ErrNotTextual.
	if p, ok := any(c).(TextParser[T]); ok {
		h.parse = func(text string) ([]byte, error) {
			v, err := p.Parse(text)
			if err != nil {
				return nil, err
			}
			return encodeValue(v)
		}
	}
	if f, ok := any(c).(TextFormatter[T]); ok {
		h.format = func(raw []byte) (string, error) {
			v, err := decodeValue[T](raw)
			if err != nil {
				return "", err
			}
			return f.Format(v), nil
		}
	}

	b.entries[id] = h
	return nil
}

// Build checks the registration invariants and freezes the handler table:
// ordinals 0..n-1 each registered exactly once, machine keys unique, and
// every handler's declared size equal to its encoded default's length.
func (b *Builder) Build() (*Registry, error) {
	n := len(b.entries)
	if n == 0 {
		return nil, ErrEmptyRegistry
	}

	entries := make([]*Handler, n)
	byKey := make(map[string]ID, n)
	maxSize := 0
	for id := ID(0); int(id) < n; id++ {
		h, ok := b.entries[id]
		if !ok {
			return nil, fmt.Errorf("%w: missing id %d of %d", ErrIDGap, id, n)
		}
		if h.size != len(h.defaultRaw) {
			return nil, fmt.Errorf("%w: %s: declared %d, encoded %d",
				ErrUnsizedType, h.meta.Key, h.size, len(h.defaultRaw))
		}
		if prev, dup := byKey[h.meta.Key]; dup {
			return nil, fmt.Errorf("%w: %q bound to ids %d and %d",
				ErrDuplicateKey, h.meta.Key, prev, id)
		}
		byKey[h.meta.Key] = id
		entries[id] = h
		if h.size > maxSize {
			maxSize = h.size
		}
	}

	return &Registry{entries: entries, byKey: byKey, maxSize: maxSize}, nil
}

// Registry is the immutable, identifier-indexed handler table. It is built
// once at startup and shared read-only by every store; concurrent readers
// need no synchronization.
type Registry struct {
	entries []*Handler
	byKey   map[string]ID
	maxSize int
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int { return len(r.entries) }

// MaxSize returns the largest encoded size across all registered types.
// Stores size every slot to this capacity.
func (r *Registry) MaxSize() int { return r.maxSize }

// Handler returns the handler for id in constant time. An out-of-range id
// is a programming error, not a runtime condition: Handler panics rather
// than returning an error so the fault is loud at the call site.
func (r *Registry) Handler(id ID) *Handler {
	if int(id) >= len(r.entries) {
		panic(fmt.Sprintf("types: parameter id %d out of range (registry has %d entries)", id, len(r.entries)))
	}
	return r.entries[id]
}

// Find resolves a machine key to its ID. Unlike Handler, keys arrive from
// external callers, so a miss is an ordinary condition.
func (r *Registry) Find(key string) (ID, bool) {
	id, ok := r.byKey[key]
	return id, ok
}

// IDs returns all registered IDs in ordinal order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, len(r.entries))
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}
