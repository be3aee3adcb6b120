// Package metadata reads and writes desktop search metadata stored as
// extended attributes.
//
// Every key lives under Prefix: the key "kMDItemKeywords" is stored in the
// raw attribute "com.apple.metadata:kMDItemKeywords". Values are binary
// property lists. Attribute flags are never written in this namespace since
// the host indexer ignores them here.
package metadata

import (
	"strings"

	"github.com/deploymenttheory/go-xattr/pkg/extattr"
)

// Prefix is prepended to every metadata key to form the raw attribute name.
const Prefix = "com.apple.metadata:"

// RawName returns the raw attribute name for key.
func RawName(key string) string {
	return Prefix + key
}

// Store is the metadata view of an attribute store.
type Store struct {
	attrs *extattr.Store
}

// NewStore returns a metadata Store for path.
func NewStore(path string, opts ...extattr.Option) *Store {
	return &Store{attrs: extattr.NewStore(path, opts...)}
}

// FromAttributes returns a metadata Store sharing attrs.
func FromAttributes(attrs *extattr.Store) *Store {
	return &Store{attrs: attrs}
}

// Attributes returns the underlying attribute store.
func (s *Store) Attributes() *extattr.Store {
	return s.attrs
}

// Get decodes key as a T. ok is false when the key is not set.
func Get[T any](s *Store, key string) (value T, ok bool, err error) {
	return extattr.GetStructured[T](s.attrs, RawName(key))
}

// Set encodes value as a property list and stores it under key.
func (s *Store) Set(key string, value any) error {
	return extattr.SetStructured(s.attrs, RawName(key), value)
}

// Has reports whether key is set.
func (s *Store) Has(key string) (bool, error) {
	return s.attrs.Has(RawName(key))
}

// Remove deletes key. Removing a missing key succeeds.
func (s *Store) Remove(key string) error {
	return s.attrs.Remove(RawName(key))
}

// Keys lists the metadata keys set on the path, without the prefix or any
// flag token. Attributes outside the namespace are skipped unread, so a
// foreign name with a malformed flag token does not fail the listing.
func (s *Store) Keys() ([]string, error) {
	names, err := s.attrs.AllNames(true)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, name := range names {
		if !strings.HasPrefix(name, Prefix) {
			continue
		}
		bare, err := s.attrs.NameWithoutFlags(name)
		if err != nil {
			return nil, err
		}
		if key := strings.TrimPrefix(bare, Prefix); key != "" {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
