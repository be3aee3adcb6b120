package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-xattr/pkg/extattr"
)

// TextEncodingInfo is the decoded text encoding attribute, stored as
// "charset;cfencoding", e.g. "utf-8;134217984".
type TextEncodingInfo struct {
	Charset    string
	CFEncoding uint32
	// HasCFEncoding is false when the value carries only a charset.
	HasCFEncoding bool
}

func (e TextEncodingInfo) String() string {
	if !e.HasCFEncoding {
		return e.Charset
	}
	return e.Charset + ";" + strconv.FormatUint(uint64(e.CFEncoding), 10)
}

// ParseTextEncoding decodes a text encoding attribute value.
func ParseTextEncoding(value string) (TextEncodingInfo, error) {
	charset, cf, found := strings.Cut(value, ";")
	if charset == "" {
		return TextEncodingInfo{}, fmt.Errorf("%w: text encoding %q has no charset", extattr.ErrSerializationCorrupt, value)
	}
	info := TextEncodingInfo{Charset: charset}
	if found && cf != "" {
		n, err := strconv.ParseUint(cf, 10, 32)
		if err != nil {
			return TextEncodingInfo{}, fmt.Errorf("%w: text encoding: %s", extattr.ErrSerializationCorrupt, err.Error())
		}
		info.CFEncoding = uint32(n)
		info.HasCFEncoding = true
	}
	return info, nil
}

type textEncodingCodec struct{}

func (textEncodingCodec) Decode(s *extattr.Store, name string) (*TextEncodingInfo, error) {
	data, ok, err := s.Get(name)
	if err != nil || !ok {
		return nil, err
	}
	info, err := ParseTextEncoding(string(data))
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (textEncodingCodec) Encode(s *extattr.Store, name string, value *TextEncodingInfo, flags *extattr.Flags) error {
	if value == nil {
		return s.Remove(name)
	}
	return s.Write(name, []byte(value.String()), flags)
}
