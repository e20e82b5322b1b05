package types

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrTypeMismatch is returned by BindHandle when T is not the value type
// registered for the requested ID.
var ErrTypeMismatch = errors.New("value type does not match registered type")

// Handle is a typed accessor bound to one parameter ID. Binding verifies at
// construction time that T is exactly the type registered for the ID, so a
// mismatched typed get or set can never reach a store. The zero Handle is
// not usable; obtain one from BindHandle.
type Handle[T any] struct {
	id   ID
	size int
}

// BindHandle binds T to id against the given registry. It returns
// ErrTypeMismatch when id was registered with a different value type.
// Bind handles once at startup and reuse them; binding is the only
// per-type check, all subsequent access is uniform.
func BindHandle[T any](r *Registry, id ID) (Handle[T], error) {
	h := r.Handler(id)
	want := reflect.TypeOf((*T)(nil)).Elem()
	if h.Type() != want {
		return Handle[T]{}, fmt.Errorf("%w: id %d holds %s, not %s",
			ErrTypeMismatch, id, h.Type(), want)
	}
	return Handle[T]{id: id, size: h.Size()}, nil
}

// ID returns the parameter ID this handle is bound to.
func (h Handle[T]) ID() ID { return h.id }

// Set validates and commits v. Validation runs inside the store's SetRaw,
// so the rejection-leaves-state-untouched guarantee applies.
func (h Handle[T]) Set(s Store, v T) error {
	raw, err := encodeValue(v)
	if err != nil {
		return err
	}
	return s.SetRaw(h.id, raw)
}

// Get returns the current value. It fails with ErrNotPresent when the
// parameter has never been set.
func (h Handle[T]) Get(s Store) (T, error) {
	var zero T
	dst := make([]byte, h.size)
	n, err := s.GetRaw(h.id, dst)
	if err != nil {
		return zero, err
	}
	if n != h.size {
		return zero, ErrSizeMismatch
	}
	return decodeValue[T](dst[:n])
}
