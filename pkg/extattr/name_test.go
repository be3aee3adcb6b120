package extattr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringName(t *testing.T) {
	s := newTestStore(t)
	name := StringName("com.example.creator")
	assert.Equal(t, "com.example.creator", name.String())

	got, err := name.Get(s)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, name.Set(s, Ptr("hello")))
	got, err = name.Get(s)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hello", *got)

	raw, _, err := s.Get("com.example.creator")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), raw)

	require.NoError(t, name.Set(s, nil))
	has, err := name.Has(s)
	require.NoError(t, err)
	assert.False(t, has)

	// setting nil on a missing attribute is still fine
	require.NoError(t, name.Set(s, nil))
}

func TestStringNameInvalidUTF8(t *testing.T) {
	s := newTestStore(t)
	name := StringName("com.example.latin1")
	require.NoError(t, s.Set("com.example.latin1", []byte{0x47, 0x72, 0xfc, 0xdf}))

	got, err := name.Get(s)
	require.NoError(t, err)
	assert.Nil(t, got)

	has, err := name.Has(s)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestBytesName(t *testing.T) {
	s := newTestStore(t)
	name := BytesName("com.example.blob")

	got, err := name.Get(s)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, name.Set(s, []byte{}))
	got, err = name.Get(s)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	require.NoError(t, name.SetWithFlags(s, []byte{1, 2}, FlagNeverPreserve))
	names, err := s.AllNames(true)
	require.NoError(t, err)
	assert.Contains(t, names, "com.example.blob#P")

	require.NoError(t, name.Set(s, nil))
	require.NoError(t, name.Remove(s))
	has, err := name.Has(s)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestStructuredName(t *testing.T) {
	s := newTestStore(t)
	name := StructuredName[[]string]("com.example.keywords")

	got, err := name.Get(s)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, name.Set(s, &[]string{"a", "b"}))
	got, err = name.Get(s)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"a", "b"}, *got)

	require.NoError(t, name.Set(s, nil))
	has, err := name.Has(s)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestStructuredNameWithDefault(t *testing.T) {
	s := newTestStore(t)

	t.Run("array", func(t *testing.T) {
		name := StructuredNameWithDefault("com.example.list", []string{"default"})
		got, err := name.Get(s)
		require.NoError(t, err)
		assert.Equal(t, []string{"default"}, got)

		require.NoError(t, name.Set(s, []string{"x", "y"}))
		got, err = name.Get(s)
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, got)
	})

	t.Run("mapping", func(t *testing.T) {
		name := StructuredNameWithDefault("com.example.dict", map[string]string{})
		got, err := name.Get(s)
		require.NoError(t, err)
		assert.Empty(t, got)

		want := map[string]string{"k": "v", "ü": "ß"}
		require.NoError(t, name.Set(s, want))
		got, err = name.Get(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("integer", func(t *testing.T) {
		name := StructuredNameWithDefault("com.example.rating", 3)
		got, err := name.Get(s)
		require.NoError(t, err)
		assert.Equal(t, 3, got)

		require.NoError(t, name.Set(s, 5))
		got, err = name.Get(s)
		require.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("text", func(t *testing.T) {
		name := StructuredNameWithDefault("com.example.note", "")
		require.NoError(t, name.Set(s, "naïve café ☕"))
		got, err := name.Get(s)
		require.NoError(t, err)
		assert.Equal(t, "naïve café ☕", got)
	})

	t.Run("corrupt is an error", func(t *testing.T) {
		name := StructuredNameWithDefault("com.example.corrupt", []string{})
		require.NoError(t, s.Set("com.example.corrupt", []byte{0x01, 0xff, 0x13}))
		_, err := name.Get(s)
		assert.ErrorIs(t, err, ErrSerializationCorrupt)
	})
}

func TestCustomCodec(t *testing.T) {
	s := newTestStore(t)

	// stores a list as comma separated text
	name := NewName[[]string]("com.example.csv", CodecFuncs[[]string]{
		DecodeFunc: func(s *Store, name string) ([]string, error) {
			data, ok, err := s.Get(name)
			if err != nil || !ok {
				return nil, err
			}
			return strings.Split(string(data), ","), nil
		},
		EncodeFunc: func(s *Store, name string, value []string, flags *Flags) error {
			return s.Write(name, []byte(strings.Join(value, ",")), flags)
		},
	})

	require.NoError(t, name.SetWithFlags(s, []string{"a", "b"}, FlagSyncable))
	raw, ok, err := s.Get("com.example.csv#S")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a,b", string(raw))

	require.NoError(t, name.Set(s, []string{"c"}))
	got, err := name.Get(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, got)
}

func TestNameNotAccessible(t *testing.T) {
	s := NewStore("")
	_, err := StringName("a").Get(s)
	assert.ErrorIs(t, err, ErrNotAccessible)
	assert.ErrorIs(t, StructuredName[int]("a").Set(s, Ptr(1)), ErrNotAccessible)
	assert.ErrorIs(t, StructuredName[int]("a").Set(s, nil), ErrNotAccessible)
}
