package extattr

import (
	"sync"
	"syscall"

	"github.com/pkg/xattr"
)

// MemoryBackend keeps attributes in process memory. Paths must be created
// with Touch before attributes can be attached to them.
type MemoryBackend struct {
	mu    sync.RWMutex
	files map[string]map[string][]byte
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{files: make(map[string]map[string][]byte)}
}

// Touch registers path as an existing filesystem object.
func (m *MemoryBackend) Touch(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; !ok {
		m.files[path] = make(map[string][]byte)
	}
}

// Delete forgets path and all of its attributes.
func (m *MemoryBackend) Delete(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
}

func (m *MemoryBackend) lookup(op, path, name string) ([]byte, error) {
	attrs, ok := m.files[path]
	if !ok {
		return nil, &xattr.Error{Op: op, Path: path, Name: name, Err: syscall.ENOENT}
	}
	data, ok := attrs[name]
	if !ok {
		return nil, &xattr.Error{Op: op, Path: path, Name: name, Err: xattr.ENOATTR}
	}
	return data, nil
}

func (m *MemoryBackend) Get(path, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, err := m.lookup("xattr.get", path, name)
	if err != nil {
		return nil, err
	}
	return append([]byte{}, data...), nil
}

func (m *MemoryBackend) Size(path, name string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, err := m.lookup("xattr.get", path, name)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

func (m *MemoryBackend) Set(path, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	attrs, ok := m.files[path]
	if !ok {
		return &xattr.Error{Op: "xattr.set", Path: path, Name: name, Err: syscall.ENOENT}
	}
	attrs[name] = append([]byte{}, data...)
	return nil
}

func (m *MemoryBackend) Remove(path, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.lookup("xattr.remove", path, name); err != nil {
		return err
	}
	delete(m.files[path], name)
	return nil
}

func (m *MemoryBackend) List(path string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	attrs, ok := m.files[path]
	if !ok {
		return nil, &xattr.Error{Op: "xattr.list", Path: path, Err: syscall.ENOENT}
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	return names, nil
}
