package extattr

import (
	"unicode/utf8"
)

// Codec converts between a stored attribute and a value of type T. Encode
// receives the flags to write with, or nil for none.
type Codec[T any] interface {
	Decode(s *Store, name string) (T, error)
	Encode(s *Store, name string, value T, flags *Flags) error
}

// CodecFuncs adapts a pair of functions to Codec.
type CodecFuncs[T any] struct {
	DecodeFunc func(s *Store, name string) (T, error)
	EncodeFunc func(s *Store, name string, value T, flags *Flags) error
}

func (c CodecFuncs[T]) Decode(s *Store, name string) (T, error) {
	return c.DecodeFunc(s, name)
}

func (c CodecFuncs[T]) Encode(s *Store, name string, value T, flags *Flags) error {
	return c.EncodeFunc(s, name, value, flags)
}

// Name is a reusable, typed attribute descriptor. It carries no per-path
// state and is safe to share.
type Name[T any] struct {
	name  string
	codec Codec[T]
}

// NewName binds name to codec.
func NewName[T any](name string, codec Codec[T]) Name[T] {
	return Name[T]{name: name, codec: codec}
}

// String returns the raw attribute name.
func (n Name[T]) String() string {
	return n.name
}

// Get decodes the attribute from s.
func (n Name[T]) Get(s *Store) (T, error) {
	return n.codec.Decode(s, n.name)
}

// Set encodes value into s. For names whose T can represent absence, an
// absent value (nil) removes the attribute instead.
func (n Name[T]) Set(s *Store, value T) error {
	return n.codec.Encode(s, n.name, value, nil)
}

// SetWithFlags is Set with flags encoded into the written name.
func (n Name[T]) SetWithFlags(s *Store, value T, flags Flags) error {
	return n.codec.Encode(s, n.name, value, &flags)
}

// Has reports whether the attribute exists, whether or not it decodes.
func (n Name[T]) Has(s *Store) (bool, error) {
	return s.Has(n.name)
}

// Remove deletes the attribute. Removing a missing attribute succeeds.
func (n Name[T]) Remove(s *Store) error {
	return s.Remove(n.name)
}

// Ptr returns a pointer to v, for setting optional names.
func Ptr[T any](v T) *T {
	return &v
}

// StringName returns a name holding UTF-8 text. Reading a missing attribute,
// or one that is not valid UTF-8, yields nil. Setting nil removes it.
func StringName(name string) Name[*string] {
	return NewName[*string](name, stringCodec{})
}

// BytesName returns a name holding raw bytes. Reading a missing attribute
// yields nil; setting nil removes it. An empty non-nil slice is a value.
func BytesName(name string) Name[[]byte] {
	return NewName[[]byte](name, bytesCodec{})
}

// StructuredName returns a name holding a property list of type V. Reading a
// missing attribute yields nil; setting nil removes it.
func StructuredName[V any](name string) Name[*V] {
	return NewName[*V](name, structuredCodec[V]{})
}

// StructuredNameWithDefault returns a name holding a property list of type
// V that reads as def while the attribute is missing. Setting always writes.
func StructuredNameWithDefault[V any](name string, def V) Name[V] {
	return NewName[V](name, structuredDefaultCodec[V]{def: def})
}

type stringCodec struct{}

func (stringCodec) Decode(s *Store, name string) (*string, error) {
	data, ok, err := s.Get(name)
	if err != nil || !ok {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, nil
	}
	str := string(data)
	return &str, nil
}

func (stringCodec) Encode(s *Store, name string, value *string, flags *Flags) error {
	if value == nil {
		return s.Remove(name)
	}
	return s.set(name, []byte(*value), flags)
}

type bytesCodec struct{}

func (bytesCodec) Decode(s *Store, name string) ([]byte, error) {
	data, _, err := s.Get(name)
	return data, err
}

func (bytesCodec) Encode(s *Store, name string, value []byte, flags *Flags) error {
	if value == nil {
		return s.Remove(name)
	}
	return s.set(name, value, flags)
}

type structuredCodec[V any] struct{}

func (structuredCodec[V]) Decode(s *Store, name string) (*V, error) {
	v, ok, err := GetStructured[V](s, name)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

func (structuredCodec[V]) Encode(s *Store, name string, value *V, flags *Flags) error {
	if value == nil {
		return s.Remove(name)
	}
	return setStructured(s, name, *value, flags)
}

type structuredDefaultCodec[V any] struct {
	def V
}

func (c structuredDefaultCodec[V]) Decode(s *Store, name string) (V, error) {
	v, ok, err := GetStructured[V](s, name)
	if err != nil {
		return v, err
	}
	if !ok {
		return c.def, nil
	}
	return v, nil
}

func (c structuredDefaultCodec[V]) Encode(s *Store, name string, value V, flags *Flags) error {
	return setStructured(s, name, value, flags)
}
