package extattr

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/pkg/xattr"
)

// Store reads and writes the extended attributes of one filesystem object.
// A Store holds no mutable state and may be shared between goroutines; it
// does not coordinate concurrent writers of the same attribute.
type Store struct {
	path    string
	target  string
	local   bool
	backend Backend
	flags   FlagCodec
}

// Option configures a Store.
type Option func(*Store)

// WithBackend routes every operation through b instead of the OS.
func WithBackend(b Backend) Option {
	return func(s *Store) {
		s.backend = b
	}
}

// WithFlagCodec replaces the codec used to encode flags into names.
func WithFlagCodec(c FlagCodec) Option {
	return func(s *Store) {
		s.flags = c
	}
}

// NewStore returns a Store bound to a local filesystem path.
func NewStore(path string, opts ...Option) *Store {
	return newStore(path, path, path != "", opts)
}

// NewStoreFromURL returns a Store bound to a file URL. Stores built from any
// other kind of URL fail every operation with ErrNotAccessible.
func NewStoreFromURL(u *url.URL, opts ...Option) *Store {
	if u == nil {
		return newStore("", "", false, opts)
	}
	local := u.Scheme == "file" && (u.Host == "" || u.Host == "localhost") && u.Path != ""
	return newStore(u.Path, u.String(), local, opts)
}

func newStore(path, target string, local bool, opts []Option) *Store {
	s := &Store{
		path:    path,
		target:  target,
		local:   local,
		backend: OSBackend{},
		flags:   DefaultFlagCodec,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the filesystem path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Backend returns the backend the store is built on.
func (s *Store) Backend() Backend {
	return s.backend
}

func (s *Store) checkAccessible() error {
	if !s.local {
		return fmt.Errorf("%w: %s is not a local filesystem object", ErrNotAccessible, s.target)
	}
	return nil
}

// translate marks errors reporting a missing target path as ErrNotAccessible
// while keeping the original error in the chain.
func (s *Store) translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && !isNoAttr(err) {
		return fmt.Errorf("%w: %w", ErrNotAccessible, err)
	}
	return err
}

func isNoAttr(err error) bool {
	return errors.Is(err, xattr.ENOATTR)
}

// Get returns the value stored under name. ok is false when the attribute
// does not exist; that is not an error.
func (s *Store) Get(name string) (data []byte, ok bool, err error) {
	if err := s.checkAccessible(); err != nil {
		return nil, false, err
	}
	data, err = s.backend.Get(s.path, name)
	if isNoAttr(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, s.translate(err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, true, nil
}

// Set stores data under name, replacing any existing value.
func (s *Store) Set(name string, data []byte) error {
	return s.set(name, data, nil)
}

// SetWithFlags stores data under name with flags encoded into the name.
func (s *Store) SetWithFlags(name string, data []byte, flags Flags) error {
	return s.set(name, data, &flags)
}

// Write stores data under name, encoding flags into the name when flags is
// not nil. It is the entry point for Codec implementations.
func (s *Store) Write(name string, data []byte, flags *Flags) error {
	return s.set(name, data, flags)
}

func (s *Store) set(name string, data []byte, flags *Flags) error {
	if err := s.checkAccessible(); err != nil {
		return err
	}
	if flags != nil {
		flagged, err := s.flags.NameWithFlags(name, *flags)
		if err != nil {
			return err
		}
		name = flagged
	}
	if data == nil {
		data = []byte{}
	}
	return s.translate(s.backend.Set(s.path, name, data))
}

// Has reports whether an attribute named name exists. The value is not read.
func (s *Store) Has(name string) (bool, error) {
	if err := s.checkAccessible(); err != nil {
		return false, err
	}
	_, err := s.backend.Size(s.path, name)
	if isNoAttr(err) {
		return false, nil
	}
	if err != nil {
		return false, s.translate(err)
	}
	return true, nil
}

// Remove deletes the attribute named name. Removing a missing attribute
// succeeds.
func (s *Store) Remove(name string) error {
	if err := s.checkAccessible(); err != nil {
		return err
	}
	err := s.backend.Remove(s.path, name)
	if isNoAttr(err) {
		return nil
	}
	return s.translate(err)
}

// AllNames lists every attribute on the path in the order the backend
// returns them. With withFlags false the flag token is stripped from each
// name.
func (s *Store) AllNames(withFlags bool) ([]string, error) {
	if err := s.checkAccessible(); err != nil {
		return nil, err
	}
	names, err := s.backend.List(s.path)
	if err != nil {
		return nil, s.translate(err)
	}
	if withFlags {
		return names, nil
	}
	stripped := make([]string, 0, len(names))
	for _, name := range names {
		n, err := s.flags.NameWithoutFlags(name)
		if err != nil {
			return nil, err
		}
		stripped = append(stripped, n)
	}
	return stripped, nil
}

// NameWithFlags encodes flags into name with the store's flag codec.
func (s *Store) NameWithFlags(name string, flags Flags) (string, error) {
	return s.flags.NameWithFlags(name, flags)
}

// NameWithoutFlags strips the flag token from name with the store's flag
// codec.
func (s *Store) NameWithoutFlags(name string) (string, error) {
	return s.flags.NameWithoutFlags(name)
}
