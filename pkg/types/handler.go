package types

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
)

// Handler errors.
var (
	ErrParse      = errors.New("text does not parse as the registered type")
	ErrNotTextual = errors.New("no text codec configured for parameter")
)

// Handler is the runtime, type-erased counterpart of a Codec. It carries the
// bound value type's metadata and byte size plus parse, format, and validate
// operations over encoded value bytes. Handlers are built once by
// Builder.Build and are immutable afterwards, so they are safe to share
// across any number of concurrent readers.
type Handler struct {
	meta       Meta
	size       int
	typ        reflect.Type
	defaultRaw []byte

	// parse and format are nil when the codec does not implement the
	// corresponding text capability.
	parse    func(text string) ([]byte, error)
	format   func(raw []byte) (string, error)
	validate func(raw []byte) bool
}

// Name returns the display name of the bound value type.
func (h *Handler) Name() string { return h.meta.Name }

// Key returns the short machine key of the bound value type.
func (h *Handler) Key() string { return h.meta.Key }

// Storage returns the storage classification of the bound value type.
func (h *Handler) Storage() StorageClass { return h.meta.Storage }

// Size returns the encoded byte size of the bound value type.
func (h *Handler) Size() int { return h.size }

// Type returns the Go type registered for this handler.
func (h *Handler) Type() reflect.Type { return h.typ }

// Default returns a fresh copy of the encoded default value.
func (h *Handler) Default() []byte {
	raw := make([]byte, len(h.defaultRaw))
	copy(raw, h.defaultRaw)
	return raw
}

// HasParser reports whether the bound codec can parse text.
func (h *Handler) HasParser() bool { return h.parse != nil }

// HasFormatter reports whether the bound codec can render text.
func (h *Handler) HasFormatter() bool { return h.format != nil }

// ParseText parses a text token into encoded value bytes. It returns
// ErrNotTextual if the codec has no parser, or an error wrapping ErrParse
// if the token does not represent a valid scalar. The result is not
// validated; callers must check ValidateRaw before committing it.
func (h *Handler) ParseText(text string) ([]byte, error) {
	if h.parse == nil {
		return nil, ErrNotTextual
	}
	raw, err := h.parse(text)
	if err != nil {
		if errors.Is(err, ErrParse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return raw, nil
}

// FormatRaw renders encoded value bytes as text. It returns ErrNotTextual
// if the codec has no formatter.
func (h *Handler) FormatRaw(raw []byte) (string, error) {
	if h.format == nil {
		return "", ErrNotTextual
	}
	return h.format(raw)
}

// ValidateRaw reports whether encoded value bytes decode to a value inside
// the type's accepted domain. Bytes that do not decode are invalid.
func (h *Handler) ValidateRaw(raw []byte) bool {
	return h.validate(raw)
}

// encodeValue renders a value into its canonical little-endian byte form.
// Value types must be fixed-size aggregates (structs of fixed-size scalars).
func encodeValue[T any](v T) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, binary.Size(v)))
	if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeValue reconstructs a value from its canonical byte form.
func decodeValue[T any](raw []byte) (T, error) {
	var v T
	err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &v)
	return v, err
}
