package binhex

import (
	"errors"
	"fmt"
)

var (
	// ErrBadFormat is returned when the BinHex markers cannot be located or the
	// encoded text or decoded container is structurally invalid.
	ErrBadFormat = errors.New("binhex: bad format")

	// ErrBadRunLengthEncoding is returned when the decoded stream ends inside a
	// run-length sequence.
	ErrBadRunLengthEncoding = errors.New("binhex: bad run-length encoding")

	// ErrCRCMismatch matches every *CRCError via errors.Is.
	ErrCRCMismatch = errors.New("binhex: crc verification failed")

	// ErrFileNameTooLong is returned when the file name exceeds MaxNameLength bytes.
	ErrFileNameTooLong = errors.New("binhex: file name too long")

	// ErrInvalidFileName is returned when the file name contains a NUL byte.
	ErrInvalidFileName = errors.New("binhex: file name contains NUL byte")

	// ErrDataTooLarge is returned when the data fork does not fit the 32-bit length field.
	ErrDataTooLarge = errors.New("binhex: data fork too large")

	// ErrResourceTooLarge is returned when the resource fork does not fit the 32-bit length field.
	ErrResourceTooLarge = errors.New("binhex: resource fork too large")

	// ErrInputTooLarge is returned by a Codec when the input exceeds its MaxInputSize.
	ErrInputTooLarge = errors.New("binhex: input too large")
)

// Section identifies a CRC-guarded region of the container.
type Section int

const (
	SectionHeader Section = iota
	SectionData
	SectionResource
)

func (s Section) String() string {
	switch s {
	case SectionHeader:
		return "header"
	case SectionData:
		return "data"
	case SectionResource:
		return "resource"
	default:
		return "unknown"
	}
}

// CRCError reports a checksum mismatch in one section of a container.
type CRCError struct {
	Section  Section
	Stored   uint16 // CRC carried by the stream
	Computed uint16 // CRC computed over the decoded bytes
}

func (e *CRCError) Error() string {
	return fmt.Sprintf("binhex: crc mismatch in %s: stored 0x%04X, computed 0x%04X", e.Section, e.Stored, e.Computed)
}

// Is reports whether target is ErrCRCMismatch.
func (e *CRCError) Is(target error) bool {
	return target == ErrCRCMismatch
}
