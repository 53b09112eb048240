package binenc

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortRead is returned when there are insufficient bytes to complete a read.
var ErrShortRead = errors.New("binenc: short read")

// ErrExpectMismatch is returned when ExpectUint8 finds a different value than expected.
var ErrExpectMismatch = errors.New("binenc: expect mismatch")

// Reader provides sequential reading of big-endian encoded data with error
// accumulation. Once an error occurs, all subsequent reads become no-ops
// returning zero values.
type Reader struct {
	data []byte
	pos  int
	err  error
}

// NewReader creates a new Reader wrapping the given byte slice with position at 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// require checks that n bytes are available at the current position.
// Returns false and sets the error if insufficient data remains.
func (r *Reader) require(n int) bool {
	if r.err != nil {
		return false
	}
	if n < 0 || r.pos+n > len(r.data) {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortRead, n, r.pos, len(r.data)-r.pos)
		return false
	}
	return true
}

// ReadUint8 reads a single byte and advances the position by 1.
func (r *Reader) ReadUint8() uint8 {
	if !r.require(1) {
		return 0
	}
	v := r.data[r.pos]
	r.pos++
	return v
}

// ReadUint16 reads a big-endian uint16 and advances the position by 2.
func (r *Reader) ReadUint16() uint16 {
	if !r.require(2) {
		return 0
	}
	v := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v
}

// ReadUint32 reads a big-endian uint32 and advances the position by 4.
func (r *Reader) ReadUint32() uint32 {
	if !r.require(4) {
		return 0
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v
}

// ReadInto fills dst from the buffer and advances the position by len(dst).
// dst is left untouched on short read.
func (r *Reader) ReadInto(dst []byte) {
	if !r.require(len(dst)) {
		return
	}
	copy(dst, r.data[r.pos:r.pos+len(dst)])
	r.pos += len(dst)
}

// View returns the next n bytes as a sub-slice of the wrapped buffer and
// advances the position. The result aliases the buffer; callers must not
// modify it. Returns nil and sets error if insufficient data.
func (r *Reader) View(n int) []byte {
	if !r.require(n) {
		return nil
	}
	b := r.data[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b
}

// Skip advances the position by n bytes without reading.
func (r *Reader) Skip(n int) {
	if !r.require(n) {
		return
	}
	r.pos += n
}

// ExpectUint8 reads a byte and sets error if the value does not match expected.
func (r *Reader) ExpectUint8(expected uint8) {
	v := r.ReadUint8()
	if r.err != nil {
		return
	}
	if v != expected {
		r.err = fmt.Errorf("%w: expected 0x%02X, got 0x%02X at offset %d", ErrExpectMismatch, expected, v, r.pos-1)
	}
}

// Err returns the first error encountered, or nil.
func (r *Reader) Err() error {
	return r.err
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return max(len(r.data)-r.pos, 0)
}

// Position returns the current read position.
func (r *Reader) Position() int {
	return r.pos
}
