//go:build !linux && !darwin

package extattr

import (
	"github.com/pkg/xattr"
)

// attrSize falls back to a full read where the size probe is unavailable.
func attrSize(path, name string) (int, error) {
	data, err := xattr.Get(path, name)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}
