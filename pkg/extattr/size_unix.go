//go:build linux || darwin

package extattr

import (
	"github.com/pkg/xattr"
	"golang.org/x/sys/unix"
)

// attrSize asks the kernel for the value length by passing an empty buffer.
func attrSize(path, name string) (int, error) {
	n, err := unix.Getxattr(path, name, nil)
	if err != nil {
		return 0, &xattr.Error{Op: "xattr.get", Path: path, Name: name, Err: err}
	}
	return n, nil
}
