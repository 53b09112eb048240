package binhex

// FileMarker is the prompt line that introduces every BinHex 4.0 stream.
const FileMarker = "(This file must be converted with BinHex 4.0)\n\n"

const (
	// lineWidth is the number of symbols written per line of encoded text.
	lineWidth = 64

	// rleMarker introduces a repeat count (or, followed by 0x00, a literal 0x90).
	rleMarker = 0x90

	// maxRun is the longest run a single repeat count can express.
	maxRun = 255

	// minRun is the shortest run of a non-marker byte worth compressing:
	// "b 0x90 n" only saves space beyond three repetitions.
	minRun = 4
)

// compressRuns run-length encodes raw so that the decoder's expansion
// filter reproduces it exactly.
func compressRuns(raw []byte) []byte {
	out := make([]byte, 0, len(raw)+len(raw)/16)
	for i := 0; i < len(raw); {
		b := raw[i]
		run := 1
		for i+run < len(raw) && raw[i+run] == b && run < maxRun {
			run++
		}

		switch {
		case b == rleMarker && run == 1:
			out = append(out, rleMarker, 0x00)
		case b == rleMarker:
			// The escape records 0x90 as the last byte; the count repeats it.
			out = append(out, rleMarker, 0x00, rleMarker, byte(run))
		case run >= minRun:
			out = append(out, b, rleMarker, byte(run))
		default:
			for j := 0; j < run; j++ {
				out = append(out, b)
			}
		}
		i += run
	}
	return out
}

// packer converts 8-bit bytes into alphabet symbols, three bytes to four
// symbols, wrapping lines every lineWidth symbols.
type packer struct {
	out     []byte
	state   int
	carry   byte
	lineLen int
}

func (p *packer) emit(v byte) {
	p.out = append(p.out, EncodeSymbol(v))
	p.lineLen++
	if p.lineLen == lineWidth {
		p.out = append(p.out, '\r', '\n')
		p.lineLen = 0
	}
}

func (p *packer) write(b byte) {
	switch p.state {
	case 0:
		p.emit(b >> 2)
		p.carry = b & 0x03
	case 1:
		p.emit(p.carry<<4 | b>>4)
		p.carry = b & 0x0F
	case 2:
		p.emit(p.carry<<2 | b>>6)
		p.emit(b & 0x3F)
	}
	p.state = (p.state + 1) % 3
}

// flush emits the carried bits of an incomplete group as a final,
// left-aligned symbol.
func (p *packer) flush() {
	switch p.state {
	case 1:
		p.emit(p.carry << 4)
	case 2:
		p.emit(p.carry << 2)
	}
	p.state = 0
	p.carry = 0
}

// encodedLength returns the number of symbols produced for n bytes.
func encodedLength(n int) int {
	return (n*4 + 2) / 3
}

// printable frames the raw container bytes as BinHex text.
func printable(raw []byte) []byte {
	packed := compressRuns(raw)
	symbols := encodedLength(len(packed))

	size := len(FileMarker) + 1 + symbols + (symbols/lineWidth)*2 + 3
	p := packer{out: make([]byte, 0, size)}
	p.out = append(p.out, FileMarker...)
	p.out = append(p.out, ':')
	for _, b := range packed {
		p.write(b)
	}
	p.flush()
	return append(p.out, ':', '\r', '\n')
}
