package binhex

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pack encodes raw into symbols without run-length encoding or framing.
func pack(raw []byte) []byte {
	var p packer
	for _, b := range raw {
		p.write(b)
	}
	p.flush()
	return p.out
}

func TestPackerGroups(t *testing.T) {
	// 0x00 0x00 0x00 packs into four zero symbols.
	assert.Equal(t, []byte("!!!!"), pack([]byte{0, 0, 0}))
	// All ones packs into four symbols of value 63.
	assert.Equal(t, []byte("rrrr"), pack([]byte{0xFF, 0xFF, 0xFF}))
}

func TestPackerFlushesPartialGroups(t *testing.T) {
	for n := 0; n <= 10; n++ {
		raw := bytes.Repeat([]byte{0xA5}, n)
		symbols := pack(raw)
		assert.Len(t, symbols, encodedLength(n), "length %d", n)

		got, err := unpack(symbols)
		require.NoError(t, err)
		assert.Equal(t, len(raw), len(got), "length %d", n)
		assert.True(t, bytes.Equal(raw, got), "length %d", n)
	}
}

func TestPackerWrapsLines(t *testing.T) {
	raw := make([]byte, 300)
	for i := range raw {
		raw[i] = byte(i * 7)
	}
	out := pack(raw)

	lines := bytes.Split(out, []byte("\r\n"))
	for i, line := range lines[:len(lines)-1] {
		assert.Len(t, line, lineWidth, "line %d", i)
	}
	assert.LessOrEqual(t, len(lines[len(lines)-1]), lineWidth)
}

func TestUnpackRunLengthExpansion(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []byte
	}{
		{"run of four", []byte{0x41, 0x90, 0x04}, []byte{0x41, 0x41, 0x41, 0x41}},
		{"escaped marker", []byte{0x90, 0x00}, []byte{0x90}},
		{"count of one", []byte{0x41, 0x90, 0x01}, []byte{0x41}},
		{"run of escaped markers", []byte{0x90, 0x00, 0x90, 0x03}, []byte{0x90, 0x90, 0x90}},
		{"literal bytes", []byte{0x01, 0x02, 0x03}, []byte{0x01, 0x02, 0x03}},
		{"run then literal", []byte{0x00, 0x90, 0x03, 0x07}, []byte{0x00, 0x00, 0x00, 0x07}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unpack(pack(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnpackTrailingMarker(t *testing.T) {
	_, err := unpack(pack([]byte{0x41, 0x90}))
	assert.ErrorIs(t, err, ErrBadRunLengthEncoding)
}

func TestUnpackInvalidCharacter(t *testing.T) {
	_, err := unpack([]byte("!!7!"))
	require.ErrorIs(t, err, ErrBadFormat)
	assert.Contains(t, err.Error(), "0x37")
	assert.Contains(t, err.Error(), "offset 2")
}

func TestUnpackSkipsFormatting(t *testing.T) {
	raw := []byte("formatting is ignored")
	symbols := pack(raw)

	var noisy []byte
	for i, c := range symbols {
		noisy = append(noisy, c)
		if i%5 == 0 {
			noisy = append(noisy, '\r', '\n')
		}
		if i%7 == 0 {
			noisy = append(noisy, 0xFF)
		}
	}

	got, err := unpack(noisy)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestCompressRuns(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []byte
	}{
		{"short run kept literal", []byte{1, 1, 1}, []byte{1, 1, 1}},
		{"run of four", []byte{1, 1, 1, 1}, []byte{1, 0x90, 4}},
		{"single marker", []byte{0x90}, []byte{0x90, 0x00}},
		{"two markers", []byte{0x90, 0x90}, []byte{0x90, 0x00, 0x90, 2}},
		{"run capped", bytes.Repeat([]byte{7}, 256), []byte{7, 0x90, 255, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compressRuns(tt.raw))
		})
	}
}

func TestCompressRunsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	noise := make([]byte, 4096)
	rng.Read(noise)

	var mixed []byte
	mixed = append(mixed, bytes.Repeat([]byte{0x90}, 600)...)
	mixed = append(mixed, 0x41, 0x90, 0x04)
	mixed = append(mixed, bytes.Repeat([]byte{0x00}, 1000)...)
	mixed = append(mixed, 0x90, 0x00)

	tests := []struct {
		name string
		raw  []byte
	}{
		{"no runs", []byte("abcdefg")},
		{"long run", bytes.Repeat([]byte{'A'}, 300)},
		{"marker runs", bytes.Repeat([]byte{0x90}, 256)},
		{"mixed", mixed},
		{"noise", noise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var x expander
			for _, c := range compressRuns(tt.raw) {
				x.put(c)
			}
			assert.False(t, x.inRun, "compressed stream ends inside a run")
			assert.Equal(t, tt.raw, x.out)
		})
	}
}

func TestPrintableFraming(t *testing.T) {
	out := printable([]byte("abc"))

	require.True(t, bytes.HasPrefix(out, []byte(FileMarker+":")))
	require.True(t, bytes.HasSuffix(out, []byte(":\r\n")))

	body := out[len(FileMarker)+1 : len(out)-3]
	for _, c := range body {
		if c == '\r' || c == '\n' {
			continue
		}
		_, ok := DecodeSymbol(c)
		assert.True(t, ok, "unexpected character %q", c)
	}
}
