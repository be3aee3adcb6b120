package catalog

import (
	"testing"
	"time"

	"github.com/deploymenttheory/go-xattr/pkg/extattr"
	"github.com/deploymenttheory/go-xattr/pkg/metadata"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/virtual/download.dmg"

func newTestStore(t *testing.T) *extattr.Store {
	t.Helper()
	mem := extattr.NewMemoryBackend()
	mem.Touch(testPath)
	return extattr.NewStore(testPath, extattr.WithBackend(mem))
}

func TestParseQuarantine(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    QuarantineInfo
		wantErr bool
	}{
		{
			name:  "full",
			value: "0083;5e8a6b2c;Safari;6B4C1E6A-5E4F-4B6A-9E0C-1D3F5A7B9C0D",
			want: QuarantineInfo{
				Flags:     0x0083,
				Timestamp: time.Unix(0x5e8a6b2c, 0).UTC(),
				Agent:     "Safari",
				EventID:   uuid.MustParse("6B4C1E6A-5E4F-4B6A-9E0C-1D3F5A7B9C0D"),
			},
		},
		{
			name:  "no event id",
			value: "01c1;5f000000;curl;",
			want:  QuarantineInfo{Flags: 0x01c1, Timestamp: time.Unix(0x5f000000, 0).UTC(), Agent: "curl"},
		},
		{
			name:  "three fields",
			value: "0081;5f000000;",
			want:  QuarantineInfo{Flags: 0x0081, Timestamp: time.Unix(0x5f000000, 0).UTC()},
		},
		{name: "too few fields", value: "0081", wantErr: true},
		{name: "bad flags", value: "zz;5f000000;x;", wantErr: true},
		{name: "bad timestamp", value: "0081;nope;x;", wantErr: true},
		{name: "bad uuid", value: "0081;5f000000;x;not-a-uuid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuarantine(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, extattr.ErrSerializationCorrupt)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuarantineName(t *testing.T) {
	s := newTestStore(t)

	got, err := Quarantine.Get(s)
	require.NoError(t, err)
	assert.Nil(t, got)

	info := &QuarantineInfo{
		Flags:     0x0081 | QuarantineUserApproved,
		Timestamp: time.Date(2024, time.March, 3, 10, 0, 0, 0, time.UTC),
		Agent:     "Firefox",
		EventID:   uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e"),
	}
	require.NoError(t, Quarantine.Set(s, info))

	raw, err := QuarantineRaw.Get(s)
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.Equal(t, "00c1;65e44a20;Firefox;0F8FAD5B-D9CB-469F-A165-70867728950E", *raw)

	got, err = Quarantine.Get(s)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *info, *got)
	assert.True(t, got.Approved())

	require.NoError(t, Quarantine.Set(s, nil))
	has, err := Quarantine.Has(s)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestTextEncodingName(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Set(TextEncodingAttr, []byte("utf-8;134217984")))

	got, err := TextEncoding.Get(s)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, TextEncodingInfo{Charset: "utf-8", CFEncoding: 134217984, HasCFEncoding: true}, *got)

	require.NoError(t, TextEncoding.Set(s, &TextEncodingInfo{Charset: "macintosh"}))
	raw, _, err := s.Get(TextEncodingAttr)
	require.NoError(t, err)
	assert.Equal(t, "macintosh", string(raw))

	require.NoError(t, s.Set(TextEncodingAttr, []byte("utf-8;lots")))
	_, err = TextEncoding.Get(s)
	assert.ErrorIs(t, err, extattr.ErrSerializationCorrupt)
}

func TestByteNames(t *testing.T) {
	s := newTestStore(t)

	info := make([]byte, FinderInfoSize)
	copy(info, "TEXTttxt")
	require.NoError(t, FinderInfo.Set(s, info))
	got, err := FinderInfo.Get(s)
	require.NoError(t, err)
	assert.Equal(t, info, got)

	require.NoError(t, ResourceFork.SetWithFlags(s, []byte{0, 0, 1, 0}, extattr.FlagNoExport))
	names, err := s.AllNames(true)
	require.NoError(t, err)
	assert.Contains(t, names, ResourceForkAttr+"#N")
}

func TestMetadataNames(t *testing.T) {
	s := newTestStore(t)
	md := metadata.FromAttributes(s)

	require.NoError(t, Keywords.Set(md, &[]string{"invoice", "2024"}))
	keywords, err := Keywords.Get(md)
	require.NoError(t, err)
	require.NotNil(t, keywords)
	assert.Equal(t, []string{"invoice", "2024"}, *keywords)

	require.NoError(t, StarRating.Set(md, extattr.Ptr(4)))
	rating, err := StarRating.Get(md)
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, 4, *rating)

	require.NoError(t, WhereFroms.Set(md, &[]string{"https://example.com/file.dmg", "https://example.com/"}))
	has, err := s.Has("com.apple.metadata:kMDItemWhereFroms")
	require.NoError(t, err)
	assert.True(t, has)

	tags, err := UserTags.Get(md)
	require.NoError(t, err)
	assert.Equal(t, []string{}, tags)

	capture, err := IsScreenCapture.Get(md)
	require.NoError(t, err)
	assert.False(t, capture)

	require.NoError(t, Creator.Set(md, extattr.Ptr("Safari")))
	keys, err := md.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{KeywordsKey, StarRatingKey, WhereFromsKey, CreatorKey}, keys)
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(QuarantineAttr)
	require.True(t, ok)
	assert.Equal(t, KindString, e.Kind)

	e, ok = Lookup("com.apple.metadata:kMDItemKeywords")
	require.True(t, ok)
	assert.Equal(t, KindStructured, e.Kind)
	assert.Equal(t, "plist", e.Kind.String())

	_, ok = Lookup("com.example.unknown")
	assert.False(t, ok)

	all := Entries()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name)
	}
}
