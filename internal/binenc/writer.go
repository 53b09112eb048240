package binenc

import (
	"encoding/binary"
	"fmt"
)

// Writer provides sequential writing of big-endian encoded data with
// append-based growth and pre-allocated capacity.
type Writer struct {
	buf []byte
	err error
}

// NewWriter creates a new Writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{
		buf: make([]byte, 0, capacity),
	}
}

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(v uint8) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, v)
}

// WriteUint16 appends a big-endian uint16.
func (w *Writer) WriteUint16(v uint16) {
	if w.err != nil {
		return
	}
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

// WriteUint32 appends a big-endian uint32.
func (w *Writer) WriteUint32(v uint32) {
	if w.err != nil {
		return
	}
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(data []byte) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, data...)
}

// WriteZeros appends n zero bytes.
func (w *Writer) WriteZeros(n int) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, make([]byte, n)...)
}

// PatchUint16 overwrites a big-endian uint16 at the specified offset. Used to
// fill CRC fields after the bytes they cover have been written.
// Sets error if the write extends beyond the current buffer length.
func (w *Writer) PatchUint16(offset int, v uint16) {
	if w.err != nil {
		return
	}
	if offset < 0 || offset+2 > len(w.buf) {
		w.err = fmt.Errorf("binenc: PatchUint16 out of bounds: offset %d + 2 > %d", offset, len(w.buf))
		return
	}
	binary.BigEndian.PutUint16(w.buf[offset:], v)
}

// Bytes returns the accumulated bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the current length of the buffer.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Err returns the first error encountered, or nil.
func (w *Writer) Err() error {
	return w.err
}
