// Package guid implements the 128-bit EFI_GUID type used by UEFI firmware.
// Based on the UEFI Specification, Appendix A (EFI_GUID) and RFC 4122.
//
// A GUID is stored as the four fields of the C EFI_GUID structure. The first
// three are little-endian integers in the wire form; the last eight bytes are
// kept in array order. The canonical text form is the uppercase
// 8-4-4-4-12 rendering used throughout the UEFI and PI specifications.
package guid

import (
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Size is the length in bytes of an EFI_GUID in memory and on the wire.
const Size = 16

var (
	// ErrInvalidFormat is returned when text cannot be parsed as a GUID.
	ErrInvalidFormat = errors.New("invalid GUID format")
	// ErrInvalidLength is returned when binary data is not exactly Size bytes.
	ErrInvalidLength = errors.New("invalid GUID length")
)

// GUID mirrors the EFI_GUID structure. It is comparable, so == and map keys
// use field-wise (equivalently bit pattern) equality.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Zero is the all-zero GUID.
var Zero GUID

// FromFields builds a GUID from the RFC 4122 field split used by EFI
// definitions: time_low, time_mid, time_high_and_version,
// clock_seq_high_and_reserved, clock_seq_low and the 6 byte node.
func FromFields(timeLow uint32, timeMid, timeHiAndVersion uint16, clockSeqHi, clockSeqLow uint8, node [6]byte) GUID {
	g := GUID{Data1: timeLow, Data2: timeMid, Data3: timeHiAndVersion}
	g.Data4[0] = clockSeqHi
	g.Data4[1] = clockSeqLow
	copy(g.Data4[2:], node[:])
	return g
}

// Fields returns the five fields FromFields was called with.
func (g GUID) Fields() (timeLow uint32, timeMid, timeHiAndVersion uint16, clockSeqHi, clockSeqLow uint8, node [6]byte) {
	copy(node[:], g.Data4[2:])
	return g.Data1, g.Data2, g.Data3, g.Data4[0], g.Data4[1], node
}

// FromBytes decodes the EFI_GUID memory layout.
func FromBytes(b [Size]byte) GUID {
	g := GUID{
		Data1: binary.LittleEndian.Uint32(b[0:4]),
		Data2: binary.LittleEndian.Uint16(b[4:6]),
		Data3: binary.LittleEndian.Uint16(b[6:8]),
	}
	copy(g.Data4[:], b[8:])
	return g
}

// FromSlice is FromBytes for data of unchecked length.
func FromSlice(data []byte) (GUID, error) {
	if len(data) != Size {
		return GUID{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(data), Size)
	}
	var b [Size]byte
	copy(b[:], data)
	return FromBytes(b), nil
}

// Bytes encodes g in the EFI_GUID memory layout.
func (g GUID) Bytes() [Size]byte {
	var b [Size]byte
	binary.LittleEndian.PutUint32(b[0:4], g.Data1)
	binary.LittleEndian.PutUint16(b[4:6], g.Data2)
	binary.LittleEndian.PutUint16(b[6:8], g.Data3)
	copy(b[8:], g.Data4[:])
	return b
}

// FromUUID converts an RFC 4122 UUID, whose fields are big-endian, to a GUID
// with the same text form.
func FromUUID(u uuid.UUID) GUID {
	g := GUID{
		Data1: binary.BigEndian.Uint32(u[0:4]),
		Data2: binary.BigEndian.Uint16(u[4:6]),
		Data3: binary.BigEndian.Uint16(u[6:8]),
	}
	copy(g.Data4[:], u[8:])
	return g
}

// UUID returns g in RFC 4122 byte order.
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.Data1)
	binary.BigEndian.PutUint16(u[4:6], g.Data2)
	binary.BigEndian.PutUint16(u[6:8], g.Data3)
	copy(u[8:], g.Data4[:])
	return u
}

// Parse decodes the canonical text form. Lowercase digits, surrounding
// braces, a "urn:uuid:" prefix and the undashed 32 digit form are accepted.
func Parse(s string) (GUID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return GUID{}, fmt.Errorf("%w %q: %v", ErrInvalidFormat, s, err)
	}
	return FromUUID(u), nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String returns the canonical XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX form.
func (g GUID) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%02X%02X-%X",
		g.Data1, g.Data2, g.Data3, g.Data4[0], g.Data4[1], g.Data4[2:])
}

// Equal reports whether g and other hold the same 128-bit value.
func (g GUID) Equal(other GUID) bool {
	return g == other
}

// IsZero reports whether g is the all-zero GUID.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

// Compare orders GUIDs the same way their canonical text sorts. It returns
// -1, 0 or 1, and 0 only for equal values.
func (g GUID) Compare(other GUID) int {
	switch {
	case g.Data1 != other.Data1:
		return cmp.Compare(g.Data1, other.Data1)
	case g.Data2 != other.Data2:
		return cmp.Compare(g.Data2, other.Data2)
	case g.Data3 != other.Data3:
		return cmp.Compare(g.Data3, other.Data3)
	}
	for i := range g.Data4 {
		if g.Data4[i] != other.Data4[i] {
			return cmp.Compare(g.Data4[i], other.Data4[i])
		}
	}
	return 0
}
