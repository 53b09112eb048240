// Package binenc provides big-endian binary encoding and decoding utilities
// for the BinHex 4.0 container layout.
//
// The package uses an error-accumulation pattern inspired by bufio.Scanner:
// callers perform multiple read/write operations and check for errors once at
// the end, rather than after every individual operation.
//
// Reader wraps a byte slice with a position cursor and accumulates the first
// error. Once an error occurs, all subsequent reads become no-ops returning
// zero values:
//
//	r := binenc.NewReader(raw)
//	nameLen := r.ReadUint8()
//	name := r.View(int(nameLen))
//	dataLen := r.ReadUint32()
//	if r.Err() != nil {
//	    return r.Err() // handles any short read in the sequence
//	}
//
// View returns sub-slices of the wrapped buffer without copying, so parsed
// structures can borrow from the buffer they were decoded from.
//
// Writer appends to a byte buffer with pre-allocated capacity and supports
// backpatching, which the container assembly uses to fill CRC fields once the
// bytes they cover are known.
//
// All integer operations use big-endian byte order as required by BinHex 4.0.
package binenc
