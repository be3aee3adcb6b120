package extattr

import (
	"github.com/pkg/xattr"
)

// Backend is the attribute syscall surface a Store is built on. Every
// method is scoped to one path.
//
// A missing attribute must be reported with an error that matches
// xattr.ENOATTR under errors.Is; a missing path with one that matches
// fs.ErrNotExist.
type Backend interface {
	// Get returns the full value of an attribute.
	Get(path, name string) ([]byte, error)
	// Size returns the length of an attribute value without reading it.
	Size(path, name string) (int, error)
	// Set creates or replaces an attribute.
	Set(path, name string, data []byte) error
	// Remove deletes an attribute.
	Remove(path, name string) error
	// List returns every attribute name on path, as stored.
	List(path string) ([]string, error)
}

// OSBackend talks to the host extended attribute syscalls.
type OSBackend struct{}

// Supported reports whether the platform has extended attributes at all.
func (OSBackend) Supported() bool {
	return xattr.XATTR_SUPPORTED
}

func (OSBackend) Get(path, name string) ([]byte, error) {
	return xattr.Get(path, name)
}

func (OSBackend) Size(path, name string) (int, error) {
	return attrSize(path, name)
}

func (OSBackend) Set(path, name string, data []byte) error {
	return xattr.Set(path, name, data)
}

func (OSBackend) Remove(path, name string) error {
	return xattr.Remove(path, name)
}

func (OSBackend) List(path string) ([]string, error) {
	return xattr.List(path)
}
