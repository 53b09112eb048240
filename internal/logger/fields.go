package logger

import (
	"fmt"
	"log/slog"
)

// Standard field keys for codec log statements.
const (
	KeyName           = "name"            // File name carried in the header
	KeySection        = "section"         // CRC-guarded section: header, data, resource
	KeyDataLength     = "data_length"     // Data fork length in bytes
	KeyResourceLength = "resource_length" // Resource fork length in bytes
	KeyInputBytes     = "input_bytes"     // Size of the encoded text handed to Decode
	KeyVerified       = "verified"        // Whether CRCs were checked
	KeyStoredCRC      = "stored_crc"      // CRC carried by the stream
	KeyComputedCRC    = "computed_crc"    // CRC computed over the decoded bytes

	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message
)

// Name returns a slog.Attr for a header file name
func Name(name []byte) slog.Attr {
	return slog.String(KeyName, string(name))
}

// Section returns a slog.Attr for a container section
func Section(s string) slog.Attr {
	return slog.String(KeySection, s)
}

func DataLength(n uint32) slog.Attr {
	return slog.Uint64(KeyDataLength, uint64(n))
}

func ResourceLength(n uint32) slog.Attr {
	return slog.Uint64(KeyResourceLength, uint64(n))
}

// InputBytes returns a slog.Attr for the size of an encoded input
func InputBytes(n int) slog.Attr {
	return slog.Int(KeyInputBytes, n)
}

func Verified(v bool) slog.Attr {
	return slog.Bool(KeyVerified, v)
}

// StoredCRC returns a slog.Attr for a CRC read from the stream, formatted as hex
func StoredCRC(crc uint16) slog.Attr {
	return slog.String(KeyStoredCRC, fmt.Sprintf("0x%04X", crc))
}

// ComputedCRC returns a slog.Attr for a locally computed CRC, formatted as hex
func ComputedCRC(crc uint16) slog.Attr {
	return slog.String(KeyComputedCRC, fmt.Sprintf("0x%04X", crc))
}

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error. A nil error yields an empty attr,
// which handlers drop.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}
