// Package binhex implements the BinHex 4.0 encoding of two-fork files.
//
// A BinHex 4.0 stream carries one file (a name, a four-character type and
// creator code, Finder flags, a data fork and a resource fork) as printable
// ASCII text:
//
//	(This file must be converted with BinHex 4.0)
//
//	:<64 symbols per line, CRLF-terminated>
//	...:
//
// Between the two colons every character encodes six bits. The decoded
// bytes are run-length encoded with the marker byte 0x90 and expand to the
// raw container:
//
//	nameLen(1) | name | 0x00 | type(4) | creator(4) | flags(2) |
//	dataLen(4) | resourceLen(4) | headerCRC(2) |
//	data(dataLen) | dataCRC(2) | resource(resourceLen) | resourceCRC(2)
//
// Multi-byte integers are big-endian. Each CRC is the 16-bit CCITT
// polynomial 0x1021, initial value 0, computed over the covered bytes
// followed by two zero bytes.
//
// Encoding and decoding are pure functions over in-memory buffers. The only
// package-level state is a set of read-only lookup tables, so all functions
// and Codec values are safe for concurrent use.
//
//	c, err := binhex.Encode(binhex.Config{
//	    Name:     []byte("readme.txt"),
//	    FileType: binhex.TypeCode("TEXT"),
//	    Data:     body,
//	})
//	text := c.Printable()
//
//	decoded, err := binhex.Decode(text, true)
package binhex
