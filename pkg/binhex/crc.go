package binhex

// crcPoly is the CCITT polynomial x^16 + x^12 + x^5 + 1.
const crcPoly = 0x1021

// updateCRC shifts the 8 bits of b, most significant first, into crc.
// The polynomial is applied whenever the bit shifted out of the register
// was set.
func updateCRC(crc uint16, b byte) uint16 {
	for i := 0; i < 8; i++ {
		carry := crc & 0x8000
		crc = crc<<1 | uint16(b>>7)
		if carry != 0 {
			crc ^= crcPoly
		}
		b <<= 1
	}
	return crc
}

// CRC16 returns the BinHex register value after shifting in every byte of
// data. The register starts at zero and no final XOR is applied.
//
// The value stored in a BinHex CRC field additionally includes two zero
// flush bytes; see Checksum.
func CRC16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc = updateCRC(crc, b)
	}
	return crc
}

// Checksum returns the CRC field value for data: CRC16 over data followed
// by two zero bytes standing in for the field itself.
func Checksum(data []byte) uint16 {
	crc := CRC16(data)
	crc = updateCRC(crc, 0)
	return updateCRC(crc, 0)
}

// VerifyCRC reports whether expected is the CRC field value for data.
func VerifyCRC(data []byte, expected uint16) bool {
	return Checksum(data) == expected
}
