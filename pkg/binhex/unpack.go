package binhex

import "fmt"

// expander undoes the run-length encoding one byte at a time.
type expander struct {
	out   []byte
	last  byte
	inRun bool
}

func (x *expander) put(b byte) {
	if !x.inRun {
		if b == rleMarker {
			x.inRun = true
			return
		}
		x.out = append(x.out, b)
		x.last = b
		return
	}

	x.inRun = false
	switch b {
	case 0x00:
		x.out = append(x.out, rleMarker)
		x.last = rleMarker
	default:
		// b >= 1: the byte before the marker already counted once.
		for n := b; n > 1; n-- {
			x.out = append(x.out, x.last)
		}
	}
}

// unpack converts the symbols of an encoded payload into bytes and expands
// runs. Line breaks and the 0xFF sentinel are skipped; any other byte
// outside the alphabet is ErrBadFormat.
func unpack(payload []byte) ([]byte, error) {
	x := expander{out: make([]byte, 0, len(payload)*3/4)}

	state := 0
	var carry byte
	for i, c := range payload {
		if isFormatting(c) {
			continue
		}
		v, ok := DecodeSymbol(c)
		if !ok {
			return nil, fmt.Errorf("%w: invalid character 0x%02X at offset %d", ErrBadFormat, c, i)
		}

		switch state {
		case 0:
			carry = v << 2
		case 1:
			x.put(carry | v>>4)
			carry = (v & 0x0F) << 4
		case 2:
			x.put(carry | v>>2)
			carry = (v & 0x03) << 6
		case 3:
			x.put(carry | v)
		}
		state = (state + 1) % 4
	}

	if x.inRun {
		return nil, fmt.Errorf("%w: stream ends after run marker", ErrBadRunLengthEncoding)
	}
	return x.out, nil
}
