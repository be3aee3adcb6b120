package metadata

// Codec converts between a metadata key and a value of type T.
type Codec[T any] interface {
	Decode(s *Store, key string) (T, error)
	Encode(s *Store, key string, value T) error
}

// Name is a typed metadata key. Like extattr.Name it carries no per-path
// state.
type Name[T any] struct {
	key   string
	codec Codec[T]
}

// NewName binds key to codec.
func NewName[T any](key string, codec Codec[T]) Name[T] {
	return Name[T]{key: key, codec: codec}
}

// Key returns the key without the namespace prefix.
func (n Name[T]) Key() string {
	return n.key
}

// String returns the raw attribute name.
func (n Name[T]) String() string {
	return RawName(n.key)
}

// Get decodes the key from s.
func (n Name[T]) Get(s *Store) (T, error) {
	return n.codec.Decode(s, n.key)
}

// Set encodes value into s. For optional names nil removes the key.
func (n Name[T]) Set(s *Store, value T) error {
	return n.codec.Encode(s, n.key, value)
}

// Has reports whether the key is set.
func (n Name[T]) Has(s *Store) (bool, error) {
	return s.Has(n.key)
}

// Remove deletes the key.
func (n Name[T]) Remove(s *Store) error {
	return s.Remove(n.key)
}

// StringName returns a key holding a property list string.
func StringName(key string) Name[*string] {
	return StructuredName[string](key)
}

// StructuredName returns a key holding a property list of type V. Reading an
// unset key yields nil; setting nil removes it.
func StructuredName[V any](key string) Name[*V] {
	return NewName[*V](key, optionalCodec[V]{})
}

// StructuredNameWithDefault returns a key holding a property list of type V
// that reads as def while unset.
func StructuredNameWithDefault[V any](key string, def V) Name[V] {
	return NewName[V](key, defaultCodec[V]{def: def})
}

type optionalCodec[V any] struct{}

func (optionalCodec[V]) Decode(s *Store, key string) (*V, error) {
	v, ok, err := Get[V](s, key)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

func (optionalCodec[V]) Encode(s *Store, key string, value *V) error {
	if value == nil {
		return s.Remove(key)
	}
	return s.Set(key, *value)
}

type defaultCodec[V any] struct {
	def V
}

func (c defaultCodec[V]) Decode(s *Store, key string) (V, error) {
	v, ok, err := Get[V](s, key)
	if err != nil {
		return v, err
	}
	if !ok {
		return c.def, nil
	}
	return v, nil
}

func (c defaultCodec[V]) Encode(s *Store, key string, value V) error {
	return s.Set(key, value)
}

