package extattr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// On Linux only the user namespace is writable by unprivileged processes.
func TestOSBackend(t *testing.T) {
	target := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(target, []byte("content"), 0o644))

	s := NewStore(target)
	if err := s.Set("user.go-xattr.probe", []byte("x")); err != nil {
		t.Skipf("filesystem does not support user xattrs: %v", err)
	}

	require.NoError(t, s.Set("user.go-xattr.empty", []byte{}))
	got, ok, err := s.Get("user.go-xattr.empty")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)

	has, err := s.Has("user.go-xattr.probe")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = s.Has("user.go-xattr.none")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, s.SetWithFlags("user.go-xattr.flagged", []byte("f"), FlagSyncable))
	names, err := s.AllNames(false)
	require.NoError(t, err)
	assert.Contains(t, names, "user.go-xattr.flagged")

	require.NoError(t, s.Remove("user.go-xattr.probe"))
	require.NoError(t, s.Remove("user.go-xattr.probe"))

	gone := NewStore(filepath.Join(t.TempDir(), "missing"))
	_, _, err = gone.Get("user.go-xattr.probe")
	assert.ErrorIs(t, err, ErrNotAccessible)
}
