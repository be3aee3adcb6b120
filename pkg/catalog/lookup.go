package catalog

import (
	"sort"

	"github.com/deploymenttheory/go-xattr/pkg/metadata"
)

// Kind is the value shape of a catalogued attribute.
type Kind int

const (
	KindBytes Kind = iota
	KindString
	KindStructured
)

func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindStructured:
		return "plist"
	default:
		return "unknown"
	}
}

// Entry describes a well known raw attribute name.
type Entry struct {
	Name        string
	Kind        Kind
	Description string
}

var entries = map[string]Entry{}

func register(name string, kind Kind, description string) {
	entries[name] = Entry{Name: name, Kind: kind, Description: description}
}

func init() {
	register(QuarantineAttr, KindString, "download quarantine marker")
	register(RootlessAttr, KindString, "system integrity protection class")
	register(TextEncodingAttr, KindString, "text encoding of the file content")
	register(FinderInfoAttr, KindBytes, "Finder info record")
	register(ResourceForkAttr, KindBytes, "resource fork")

	register(metadata.RawName(CreatorKey), KindStructured, "creating application")
	register(metadata.RawName(AuthorsKey), KindStructured, "authors")
	register(metadata.RawName(KeywordsKey), KindStructured, "keywords")
	register(metadata.RawName(StarRatingKey), KindStructured, "star rating")
	register(metadata.RawName(WhereFromsKey), KindStructured, "download source URLs")
	register(metadata.RawName(DownloadedDateKey), KindStructured, "download date")
	register(metadata.RawName(FinderCommentKey), KindStructured, "Finder comment")
	register(metadata.RawName(UserTagsKey), KindStructured, "Finder tags")
	register(metadata.RawName(TitleKey), KindStructured, "title")
	register(metadata.RawName(DescriptionKey), KindStructured, "description")
	register(metadata.RawName(CopyrightKey), KindStructured, "copyright notice")
	register(metadata.RawName(HeadlineKey), KindStructured, "headline")
	register(metadata.RawName(ContentCreationDateKey), KindStructured, "content creation date")
	register(metadata.RawName(DueDateKey), KindStructured, "due date")
	register(metadata.RawName(IsScreenCaptureKey), KindStructured, "screen capture marker")
}

// Lookup returns the entry for a raw attribute name.
func Lookup(name string) (Entry, bool) {
	e, ok := entries[name]
	return e, ok
}

// Entries returns every catalogued entry sorted by name.
func Entries() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
