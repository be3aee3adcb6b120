package extattr

import (
	"errors"
)

var (
	// ErrNotAccessible is returned when the store target is not a local
	// filesystem object, or the object does not exist.
	ErrNotAccessible = errors.New("path is not accessible")

	// ErrSerializationInvalid is returned when a value cannot be encoded as a
	// property list. The store is not touched.
	ErrSerializationInvalid = errors.New("value is not a valid property list")

	// ErrSerializationCorrupt is returned when stored bytes do not decode into
	// the requested type.
	ErrSerializationCorrupt = errors.New("attribute data is corrupt")

	// ErrFlagCodec is returned when a flag suffix cannot be encoded into, or
	// decoded from, an attribute name.
	ErrFlagCodec = errors.New("invalid attribute flag encoding")
)
