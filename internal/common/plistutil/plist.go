// Package plistutil renders and parses property list attribute values
package plistutil

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-xattr/pkg/extattr"
	"howett.net/plist"
)

// Format represents the plist format
type Format int

const (
	// FormatXML is the XML plist format
	FormatXML Format = iota
	// FormatBinary is the binary plist format
	FormatBinary
	// FormatOpenStep is the OpenStep plist format
	FormatOpenStep
	// FormatGNUStep is the GNUStep plist format
	FormatGNUStep
	// FormatUnknown marks data that is not a property list
	FormatUnknown
)

// Decode parses a property list of any format into its dynamic value
func Decode(data []byte) (interface{}, Format, error) {
	var value interface{}
	format, err := plist.Unmarshal(data, &value)
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("%w: %s", extattr.ErrSerializationCorrupt, err.Error())
	}
	return value, fromLibraryFormat(format), nil
}

// Encode renders value in the specified format. Text formats are indented.
func Encode(value interface{}, format Format) ([]byte, error) {
	if !extattr.Encodable(value) {
		return nil, fmt.Errorf("%w: %T", extattr.ErrSerializationInvalid, value)
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatBinary:
		data, err = plist.Marshal(value, plist.BinaryFormat)
	case FormatOpenStep:
		data, err = plist.MarshalIndent(value, plist.OpenStepFormat, "  ")
	case FormatGNUStep:
		data, err = plist.MarshalIndent(value, plist.GNUStepFormat, "  ")
	default:
		// Default to XML for safety
		data, err = plist.MarshalIndent(value, plist.XMLFormat, "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", extattr.ErrSerializationInvalid, err.Error())
	}
	return data, nil
}

// Render decodes a stored property list and re-encodes it in a text format
func Render(data []byte, format Format) (string, error) {
	value, _, err := Decode(data)
	if err != nil {
		return "", err
	}
	if format == FormatBinary {
		format = FormatXML
	}
	out, err := Encode(value, format)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DetectFormat detects the format of plist data from its header
func DetectFormat(data []byte) Format {
	header := data
	if len(header) > 8 {
		header = header[:8]
	}

	// Check for binary (bplist00)
	if bytes.HasPrefix(header, []byte("bplist00")) {
		return FormatBinary
	}

	// Check for XML
	if bytes.HasPrefix(header, []byte("<?xml")) || bytes.HasPrefix(header, []byte("<!DOCTYPE")) || bytes.HasPrefix(header, []byte("<plist")) {
		return FormatXML
	}

	// Check for OpenStep/GNUStep format (usually starts with (, { or ")
	if bytes.HasPrefix(header, []byte("{")) || bytes.HasPrefix(header, []byte("(")) || bytes.HasPrefix(header, []byte("\"")) {
		return FormatOpenStep
	}

	return FormatUnknown
}

func fromLibraryFormat(format int) Format {
	switch format {
	case plist.BinaryFormat:
		return FormatBinary
	case plist.OpenStepFormat:
		return FormatOpenStep
	case plist.GNUStepFormat:
		return FormatGNUStep
	case plist.XMLFormat:
		return FormatXML
	default:
		return FormatUnknown
	}
}

// FormatToString converts a Format enum to a string
func FormatToString(format Format) string {
	switch format {
	case FormatXML:
		return "XML"
	case FormatBinary:
		return "Binary"
	case FormatOpenStep:
		return "OpenStep"
	case FormatGNUStep:
		return "GNUStep"
	default:
		return "Unknown"
	}
}

// StringToFormat converts a string to a Format enum
func StringToFormat(formatStr string) Format {
	switch strings.ToLower(formatStr) {
	case "xml":
		return FormatXML
	case "binary":
		return FormatBinary
	case "openstep":
		return FormatOpenStep
	case "gnustep":
		return FormatGNUStep
	default:
		return FormatXML // Default to XML
	}
}
