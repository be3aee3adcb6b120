package extattr

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"syscall"

	"github.com/pkg/xattr"
)

// SideCarBackend stores attributes as files in a separate directory, one
// subdirectory per target path. It serves filesystems that reject extended
// attributes or the names being written.
type SideCarBackend struct {
	dir string
}

// NewSideCarBackend returns a SideCarBackend rooted at dir, which must be an
// existing directory.
func NewSideCarBackend(dir string) (*SideCarBackend, error) {
	fi, err := os.Lstat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat directory: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", dir)
	}
	return &SideCarBackend{dir: dir}, nil
}

// metaDir returns the attribute directory for path after checking that path
// itself exists.
func (s *SideCarBackend) metaDir(op, path, name string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &xattr.Error{Op: op, Path: path, Name: name, Err: err}
	}
	if _, err := os.Lstat(abs); err != nil {
		return "", &xattr.Error{Op: op, Path: path, Name: name, Err: err}
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:])), nil
}

func (s *SideCarBackend) attrFile(op, path, name string) (string, error) {
	if name == "" {
		return "", &xattr.Error{Op: op, Path: path, Name: name, Err: syscall.EINVAL}
	}
	metadir, err := s.metaDir(op, path, name)
	if err != nil {
		return "", err
	}
	return filepath.Join(metadir, attrFileName(name)), nil
}

// attrFileName escapes name into a single path element. PathEscape keeps
// dots, so the two dot-only names are spelled out.
func attrFileName(name string) string {
	switch name {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	}
	return url.PathEscape(name)
}

func (s *SideCarBackend) Get(path, name string) ([]byte, error) {
	attr, err := s.attrFile("xattr.get", path, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(attr)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &xattr.Error{Op: "xattr.get", Path: path, Name: name, Err: xattr.ENOATTR}
	}
	if err != nil {
		return nil, &xattr.Error{Op: "xattr.get", Path: path, Name: name, Err: err}
	}
	return data, nil
}

func (s *SideCarBackend) Size(path, name string) (int, error) {
	attr, err := s.attrFile("xattr.get", path, name)
	if err != nil {
		return 0, err
	}
	fi, err := os.Stat(attr)
	if errors.Is(err, os.ErrNotExist) {
		return 0, &xattr.Error{Op: "xattr.get", Path: path, Name: name, Err: xattr.ENOATTR}
	}
	if err != nil {
		return 0, &xattr.Error{Op: "xattr.get", Path: path, Name: name, Err: err}
	}
	return int(fi.Size()), nil
}

func (s *SideCarBackend) Set(path, name string, data []byte) error {
	attr, err := s.attrFile("xattr.set", path, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(attr), 0o755); err != nil {
		return &xattr.Error{Op: "xattr.set", Path: path, Name: name, Err: err}
	}
	if err := os.WriteFile(attr, data, 0o644); err != nil {
		return &xattr.Error{Op: "xattr.set", Path: path, Name: name, Err: err}
	}
	return nil
}

func (s *SideCarBackend) Remove(path, name string) error {
	attr, err := s.attrFile("xattr.remove", path, name)
	if err != nil {
		return err
	}
	err = os.Remove(attr)
	if errors.Is(err, os.ErrNotExist) {
		return &xattr.Error{Op: "xattr.remove", Path: path, Name: name, Err: xattr.ENOATTR}
	}
	if err != nil {
		return &xattr.Error{Op: "xattr.remove", Path: path, Name: name, Err: err}
	}
	return nil
}

func (s *SideCarBackend) List(path string) ([]string, error) {
	metadir, err := s.metaDir("xattr.list", path, "")
	if err != nil {
		return nil, err
	}
	ents, err := os.ReadDir(metadir)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, &xattr.Error{Op: "xattr.list", Path: path, Err: err}
	}
	names := make([]string, 0, len(ents))
	for _, ent := range ents {
		name, err := url.PathUnescape(ent.Name())
		if err != nil {
			return nil, &xattr.Error{Op: "xattr.list", Path: path, Name: ent.Name(), Err: err}
		}
		names = append(names, name)
	}
	return names, nil
}
