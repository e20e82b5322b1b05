// Package memstore implements the volatile in-memory backend for the Knobs
// parameter store: one fixed-capacity byte slot per registered ID, sized
// uniformly to the largest registered type.
package memstore

import (
	"github.com/mesh-intelligence/knobs/pkg/types"
)

// slot holds one parameter's current encoded value. Capacity is fixed at
// construction; n and present change only on a successful commit.
type slot struct {
	buf     []byte
	n       int
	present bool
}

// Store implements types.Store over in-process memory. Slots are created
// empty; nothing is persisted and nothing survives the process.
//
// Store holds no locks. The registry it dispatches through is immutable and
// safe for concurrent readers, but concurrent mutation of the store itself
// requires external synchronization.
type Store struct {
	reg   *types.Registry
	slots []slot
}

// New builds a store against reg. The config's backend must name the memory
// backend; the indirection mirrors the storage classification on each
// handler and leaves room for persistent backends later.
func New(reg *types.Registry, cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slots := make([]slot, reg.Len())
	for i := range slots {
		slots[i] = slot{buf: make([]byte, reg.MaxSize())}
	}
	return &Store{reg: reg, slots: slots}, nil
}

// Registry returns the handler table this store was built against.
func (s *Store) Registry() *types.Registry { return s.reg }

// Present reports whether id has ever been successfully set.
func (s *Store) Present(id types.ID) bool {
	s.reg.Handler(id) // assert id is in range
	return s.slots[id].present
}

// SetRaw validates encoded bytes for id and commits them. The slot is
// untouched unless both the size check and domain validation pass.
func (s *Store) SetRaw(id types.ID, data []byte) error {
	h := s.reg.Handler(id)
	if len(data) != h.Size() {
		return types.ErrSizeMismatch
	}
	if !h.ValidateRaw(data) {
		return types.ErrOutOfRange
	}
	s.commit(id, data)
	return nil
}

// GetRaw copies the current encoded value of id into dst.
func (s *Store) GetRaw(id types.ID, dst []byte) (int, error) {
	s.reg.Handler(id)
	sl := &s.slots[id]
	if !sl.present {
		return 0, types.ErrNotPresent
	}
	if len(dst) < sl.n {
		return sl.n, types.ErrShortBuffer
	}
	return copy(dst, sl.buf[:sl.n]), nil
}

// SetText parses text for id, validates the parsed value, and commits it.
// Parse and validation are independent checks; a token that parses but
// falls outside the domain is rejected without mutation.
func (s *Store) SetText(id types.ID, text string) error {
	h := s.reg.Handler(id)
	raw, err := h.ParseText(text)
	if err != nil {
		return err
	}
	if !h.ValidateRaw(raw) {
		return types.ErrOutOfRange
	}
	s.commit(id, raw)
	return nil
}

// FormatText renders the current value of id in its fixed text form.
func (s *Store) FormatText(id types.ID) (string, error) {
	h := s.reg.Handler(id)
	if !h.HasFormatter() {
		return "", types.ErrNotTextual
	}
	sl := &s.slots[id]
	if !sl.present {
		return "", types.ErrNotPresent
	}
	return h.FormatRaw(sl.buf[:sl.n])
}

// GetText renders the current value of id into dst. When dst is too small
// it writes nothing and returns the required length with ErrShortBuffer.
func (s *Store) GetText(id types.ID, dst []byte) (int, error) {
	text, err := s.FormatText(id)
	if err != nil {
		return 0, err
	}
	if len(dst) < len(text) {
		return len(text), types.ErrShortBuffer
	}
	return copy(dst, text), nil
}

// Restore commits the registered default value for id. Defaults are checked
// against validation at registration, so this cannot be rejected.
func (s *Store) Restore(id types.ID) error {
	h := s.reg.Handler(id)
	s.commit(id, h.Default())
	return nil
}

// RestoreAll commits the registered default value for every id.
func (s *Store) RestoreAll() error {
	for _, id := range s.reg.IDs() {
		if err := s.Restore(id); err != nil {
			return err
		}
	}
	return nil
}

// commit copies validated bytes into the slot and marks it present. Callers
// must have completed all checks; commit itself cannot fail.
func (s *Store) commit(id types.ID, data []byte) {
	sl := &s.slots[id]
	sl.n = copy(sl.buf, data)
	sl.present = true
}

// Compile-time check that Store satisfies the interface.
var _ types.Store = (*Store)(nil)
