package binhex

// Alphabet maps 6-bit values to their printable BinHex characters.
const Alphabet = "!\"#$%&'()*+,-012345689@ABCDEFGHIJKLMNPQRSTUVXYZ[`abcdefhijklmpqr"

// eofSentinel may appear in decoded text as an internal terminator and is
// skipped like a line break.
const eofSentinel = 0xFF

// invalidSymbol marks bytes outside the alphabet in decodeTable.
const invalidSymbol = 0xFF

var decodeTable [256]byte

func init() {
	for i := range decodeTable {
		decodeTable[i] = invalidSymbol
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeTable[Alphabet[i]] = byte(i)
	}
}

// EncodeSymbol returns the character for the low 6 bits of v.
func EncodeSymbol(v byte) byte {
	return Alphabet[v&0x3F]
}

// DecodeSymbol returns the 6-bit value of character c, or false when c is
// not part of the alphabet.
func DecodeSymbol(c byte) (byte, bool) {
	v := decodeTable[c]
	return v, v != invalidSymbol
}

// isFormatting reports whether c is skipped by the decoder without
// consuming a symbol slot.
func isFormatting(c byte) bool {
	return c == '\r' || c == '\n' || c == eofSentinel
}
