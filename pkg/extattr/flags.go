package extattr

import (
	"fmt"
	"strings"
)

// Flags describes how an attribute is treated when its file is copied,
// exported, synced or backed up.
type Flags uint64

const (
	// FlagNoExport drops the attribute when the file is exported or shared.
	FlagNoExport Flags = 1 << iota
	// FlagContentDependent ties the attribute to the file content; it is
	// dropped when the content changes.
	FlagContentDependent
	// FlagNeverPreserve drops the attribute on every copy.
	FlagNeverPreserve
	// FlagSyncable keeps the attribute when the file is synced.
	FlagSyncable
	// FlagOnlyBackup keeps the attribute only for backup copies.
	FlagOnlyBackup
)

// FlagDelimiter separates an attribute name from its flag token.
const FlagDelimiter = '#'

// flagLetters is ordered; encoding emits letters in this order.
var flagLetters = []struct {
	flag   Flags
	letter byte
}{
	{FlagContentDependent, 'C'},
	{FlagNoExport, 'N'},
	{FlagNeverPreserve, 'P'},
	{FlagSyncable, 'S'},
	{FlagOnlyBackup, 'B'},
}

const allFlags = FlagNoExport | FlagContentDependent | FlagNeverPreserve | FlagSyncable | FlagOnlyBackup

// String returns the flag token, e.g. "CS".
func (f Flags) String() string {
	var b strings.Builder
	for _, fl := range flagLetters {
		if f&fl.flag != 0 {
			b.WriteByte(fl.letter)
		}
	}
	return b.String()
}

// ParseFlags decodes a flag token such as "NS" into a bitset.
func ParseFlags(token string) (Flags, error) {
	var f Flags
	for i := 0; i < len(token); i++ {
		found := false
		for _, fl := range flagLetters {
			if token[i] == fl.letter {
				f |= fl.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: unknown flag %q in %q", ErrFlagCodec, token[i], token)
		}
	}
	return f, nil
}

// FlagCodec transcodes flags to and from attribute names.
type FlagCodec interface {
	NameWithFlags(name string, flags Flags) (string, error)
	NameWithoutFlags(name string) (string, error)
	FlagsFromName(name string) (Flags, error)
}

// DefaultFlagCodec is the "<name>#<letters>" codec used by the host
// desktop's copy engine.
var DefaultFlagCodec FlagCodec = suffixCodec{}

type suffixCodec struct{}

func (suffixCodec) NameWithFlags(name string, flags Flags) (string, error) {
	return NameWithFlags(name, flags)
}

func (suffixCodec) NameWithoutFlags(name string) (string, error) {
	return NameWithoutFlags(name)
}

func (suffixCodec) FlagsFromName(name string) (Flags, error) {
	return FlagsFromName(name)
}

// NameWithFlags appends the flag token for flags to name. A zero flag set
// leaves name unchanged.
func NameWithFlags(name string, flags Flags) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty attribute name", ErrFlagCodec)
	}
	if strings.IndexByte(name, FlagDelimiter) >= 0 {
		return "", fmt.Errorf("%w: %q already carries flags", ErrFlagCodec, name)
	}
	if flags&^allFlags != 0 {
		return "", fmt.Errorf("%w: unknown flag bits %#x", ErrFlagCodec, uint64(flags&^allFlags))
	}
	if flags == 0 {
		return name, nil
	}
	return name + string(FlagDelimiter) + flags.String(), nil
}

// FlagsFromName decodes the flag token of name. Names without a token have
// no flags.
func FlagsFromName(name string) (Flags, error) {
	i := strings.LastIndexByte(name, FlagDelimiter)
	if i < 0 {
		return 0, nil
	}
	return ParseFlags(name[i+1:])
}

// NameWithoutFlags strips the flag token from name. The token must be well
// formed.
func NameWithoutFlags(name string) (string, error) {
	i := strings.LastIndexByte(name, FlagDelimiter)
	if i < 0 {
		return name, nil
	}
	if _, err := ParseFlags(name[i+1:]); err != nil {
		return "", err
	}
	return name[:i], nil
}
