// Package catalog defines typed names for well known extended attributes and
// search metadata keys, plus a lookup table describing them.
package catalog
