package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/deploymenttheory/go-xattr/pkg/extattr"
	"github.com/google/uuid"
)

// QuarantineUserApproved is set once the user has allowed the file to open.
const QuarantineUserApproved uint16 = 0x0040

// QuarantineInfo is the decoded form of the quarantine attribute, stored as
// "flags;timestamp;agent;event-id" with hex flags and a hex Unix timestamp.
type QuarantineInfo struct {
	Flags     uint16
	Timestamp time.Time
	Agent     string
	EventID   uuid.UUID
}

// Approved reports whether the user approved the file.
func (q QuarantineInfo) Approved() bool {
	return q.Flags&QuarantineUserApproved != 0
}

// String encodes q in the attribute format.
func (q QuarantineInfo) String() string {
	event := ""
	if q.EventID != uuid.Nil {
		event = strings.ToUpper(q.EventID.String())
	}
	return fmt.Sprintf("%04x;%08x;%s;%s", q.Flags, q.Timestamp.Unix(), q.Agent, event)
}

// ParseQuarantine decodes a quarantine attribute value.
func ParseQuarantine(value string) (QuarantineInfo, error) {
	fields := strings.Split(value, ";")
	if len(fields) < 3 || len(fields) > 4 {
		return QuarantineInfo{}, fmt.Errorf("%w: quarantine value %q has %d fields", extattr.ErrSerializationCorrupt, value, len(fields))
	}

	flags, err := strconv.ParseUint(fields[0], 16, 16)
	if err != nil {
		return QuarantineInfo{}, fmt.Errorf("%w: quarantine flags: %s", extattr.ErrSerializationCorrupt, err.Error())
	}
	ts, err := strconv.ParseInt(fields[1], 16, 64)
	if err != nil {
		return QuarantineInfo{}, fmt.Errorf("%w: quarantine timestamp: %s", extattr.ErrSerializationCorrupt, err.Error())
	}

	info := QuarantineInfo{
		Flags:     uint16(flags),
		Timestamp: time.Unix(ts, 0).UTC(),
		Agent:     fields[2],
	}
	if len(fields) == 4 && fields[3] != "" {
		id, err := uuid.Parse(fields[3])
		if err != nil {
			return QuarantineInfo{}, fmt.Errorf("%w: quarantine event id: %s", extattr.ErrSerializationCorrupt, err.Error())
		}
		info.EventID = id
	}
	return info, nil
}

type quarantineCodec struct{}

func (quarantineCodec) Decode(s *extattr.Store, name string) (*QuarantineInfo, error) {
	data, ok, err := s.Get(name)
	if err != nil || !ok {
		return nil, err
	}
	info, err := ParseQuarantine(strings.TrimRight(string(data), "\x00"))
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (quarantineCodec) Encode(s *extattr.Store, name string, value *QuarantineInfo, flags *extattr.Flags) error {
	if value == nil {
		return s.Remove(name)
	}
	return s.Write(name, []byte(value.String()), flags)
}
