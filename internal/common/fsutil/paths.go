// fsutil/paths.go
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ToAbsPath converts a relative path to an absolute path
func ToAbsPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Abs(path)
}

// DirExists checks if a directory exists
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CreateDirIfNotExists creates a directory (and parents) if it does not exist
func CreateDirIfNotExists(path string) error {
	if DirExists(path) {
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// ResolveTarget returns the absolute form of a command line target path.
// The target itself is not checked; attribute operations report a missing
// target on their own.
func ResolveTarget(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	return ToAbsPath(filepath.Clean(path))
}
