package binhex

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"math"

	"github.com/marmos91/binhex/internal/binenc"
)

const (
	// DefaultName is the file name used when Config.Name is nil.
	DefaultName = "Untitled.hqx"

	// MaxNameLength is the longest file name the one-byte length field can describe.
	MaxNameLength = 255

	crcLength = 2
)

// maxForkLength is the largest fork the 32-bit length fields can describe.
var maxForkLength uint64 = math.MaxUint32

// HeaderLength returns the size of a header carrying a name of nameLen
// bytes: length byte, name, NUL, type, creator, flags, both fork lengths
// and the header CRC.
func HeaderLength(nameLen int) int {
	return 1 + (nameLen + 1) + 4 + 4 + 2 + 4 + 4 + crcLength
}

// TypeCode converts s into a four-character type or creator code. Shorter
// strings are padded with spaces; longer strings are truncated.
func TypeCode(s string) [4]byte {
	code := [4]byte{' ', ' ', ' ', ' '}
	copy(code[:], s)
	return code
}

// Config describes a file to encode. All fields are optional.
type Config struct {
	// Name is the file name. nil selects the codec's default name; an empty
	// non-nil slice encodes an empty name.
	Name []byte

	// FileType and Author are the four-character type and creator codes.
	FileType [4]byte
	Author   [4]byte

	// Flags holds the Finder flags.
	Flags [2]byte

	Data     []byte
	Resource []byte
}

// RawLength returns the size of the assembled container for a name of
// nameLen bytes.
func (cfg *Config) RawLength(nameLen int) int {
	return HeaderLength(nameLen) + len(cfg.Data) + crcLength + len(cfg.Resource) + crcLength
}

// Fork is one CRC-guarded payload of a container.
type Fork struct {
	Data []byte
	CRC  uint16
}

// Container is an assembled or parsed BinHex container. Name and the fork
// payloads are views into the buffer returned by Raw and must not be
// modified.
type Container struct {
	Name     []byte
	FileType [4]byte
	Author   [4]byte
	Flags    [2]byte

	DataLength     uint32
	ResourceLength uint32

	HeaderCRC    uint16
	HeaderLength int

	// Data and Resource are nil when the corresponding length is zero.
	Data     *Fork
	Resource *Fork

	raw []byte
}

// assemble builds the raw container bytes for cfg with every CRC filled in.
func assemble(cfg Config, defaultName []byte) ([]byte, error) {
	name := cfg.Name
	if name == nil {
		name = defaultName
	}
	if len(name) > MaxNameLength {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrFileNameTooLong, len(name), MaxNameLength)
	}
	if bytes.IndexByte(name, 0) >= 0 {
		return nil, ErrInvalidFileName
	}
	if uint64(len(cfg.Data)) > maxForkLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrDataTooLarge, len(cfg.Data))
	}
	if uint64(len(cfg.Resource)) > maxForkLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrResourceTooLarge, len(cfg.Resource))
	}

	w := binenc.NewWriter(cfg.RawLength(len(name)))
	w.WriteUint8(uint8(len(name)))
	w.WriteBytes(name)
	w.WriteUint8(0)
	w.WriteBytes(cfg.FileType[:])
	w.WriteBytes(cfg.Author[:])
	w.WriteBytes(cfg.Flags[:])
	w.WriteUint32(uint32(len(cfg.Data)))
	w.WriteUint32(uint32(len(cfg.Resource)))

	crcAt := w.Len()
	w.WriteZeros(crcLength)
	w.PatchUint16(crcAt, Checksum(w.Bytes()[:crcAt]))

	writeFork(w, cfg.Data)
	writeFork(w, cfg.Resource)

	if err := w.Err(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// writeFork appends data and its CRC. An empty fork still gets a zero CRC field.
func writeFork(w *binenc.Writer, data []byte) {
	w.WriteBytes(data)
	w.WriteUint16(Checksum(data))
}

// Parse interprets raw as container bytes. The returned Container
// references raw without copying it.
func Parse(raw []byte) (*Container, error) {
	r := binenc.NewReader(raw)
	c := &Container{raw: raw}

	nameLen := int(r.ReadUint8())
	c.Name = r.View(nameLen)
	r.ExpectUint8(0)
	r.ReadInto(c.FileType[:])
	r.ReadInto(c.Author[:])
	r.ReadInto(c.Flags[:])
	c.DataLength = r.ReadUint32()
	c.ResourceLength = r.ReadUint32()
	c.HeaderCRC = r.ReadUint16()
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrBadFormat, err)
	}
	c.HeaderLength = HeaderLength(nameLen)

	var err error
	if c.Data, err = readFork(r, c.DataLength); err != nil {
		return nil, fmt.Errorf("%w: data fork: %w", ErrBadFormat, err)
	}
	if c.Resource, err = readFork(r, c.ResourceLength); err != nil {
		return nil, fmt.Errorf("%w: resource fork: %w", ErrBadFormat, err)
	}
	return c, nil
}

// readFork reads length payload bytes and the CRC that follows them. A
// missing CRC (fewer than two bytes left) reads as zero.
func readFork(r *binenc.Reader, length uint32) (*Fork, error) {
	var f *Fork
	if length > 0 {
		if uint64(length) > uint64(r.Remaining()) {
			return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
				binenc.ErrShortRead, length, r.Position(), r.Remaining())
		}
		f = &Fork{Data: r.View(int(length))}
	}

	var crc uint16
	if r.Remaining() >= crcLength {
		crc = r.ReadUint16()
	}
	if f != nil {
		f.CRC = crc
	}
	return f, r.Err()
}

// Raw returns the decoded container bytes.
func (c *Container) Raw() []byte {
	return c.raw
}

// headerBytes returns the header bytes covered by the header CRC.
func (c *Container) headerBytes() []byte {
	return c.raw[:c.HeaderLength-crcLength]
}

// Printable returns the container as BinHex 4.0 text: file marker, colon,
// 64-symbol CRLF-terminated lines, closing colon and CRLF.
func (c *Container) Printable() []byte {
	return printable(c.raw)
}

// WriteTo writes the printable form of the container to w.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Printable())
	return int64(n), err
}

// HexDump returns a hex dump of the raw container bytes, 16 bytes per row.
func (c *Container) HexDump() string {
	return hex.Dump(c.raw)
}
