package catalog

import (
	"github.com/deploymenttheory/go-xattr/pkg/extattr"
)

// Raw attribute names.
const (
	QuarantineAttr   = "com.apple.quarantine"
	RootlessAttr     = "com.apple.rootless"
	TextEncodingAttr = "com.apple.TextEncoding"
	FinderInfoAttr   = "com.apple.FinderInfo"
	ResourceForkAttr = "com.apple.ResourceFork"
)

// FinderInfoSize is the length of a Finder info record.
const FinderInfoSize = 32

var (
	// Quarantine marks files obtained from an untrusted source.
	Quarantine = extattr.NewName[*QuarantineInfo](QuarantineAttr, quarantineCodec{})
	// QuarantineRaw is the quarantine attribute as undecoded text.
	QuarantineRaw = extattr.StringName(QuarantineAttr)
	// Rootless names the protection class of a system-protected file.
	Rootless = extattr.StringName(RootlessAttr)
	// TextEncoding records the encoding a text file was saved with.
	TextEncoding = extattr.NewName[*TextEncodingInfo](TextEncodingAttr, textEncodingCodec{})
	// FinderInfo is the 32 byte Finder info record.
	FinderInfo = extattr.BytesName(FinderInfoAttr)
	// ResourceFork is the classic resource fork.
	ResourceFork = extattr.BytesName(ResourceForkAttr)
)
