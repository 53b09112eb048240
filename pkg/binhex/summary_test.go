package binhex

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func summaryFixture(t *testing.T) *Container {
	t.Helper()
	c, err := Encode(Config{
		Name:     []byte("hello.txt"),
		FileType: TypeCode("TEXT"),
		Author:   [4]byte{0x00, 0x01, 0x02, 0x03},
		Flags:    [2]byte{0x01, 0x00},
		Data:     []byte("hello"),
	})
	require.NoError(t, err)
	return c
}

func TestContainerSummary(t *testing.T) {
	c := summaryFixture(t)
	s := c.Summary()

	assert.Equal(t, "hello.txt", s.Name)
	assert.Equal(t, "TEXT", s.FileType)
	assert.Equal(t, "0x00010203", s.Author)
	assert.Equal(t, "0x0100", s.Flags)
	assert.Equal(t, uint32(5), s.DataLength)
	assert.Zero(t, s.ResourceLength)
	assert.Equal(t, formatCRC(c.HeaderCRC), s.HeaderCRC)
	assert.Equal(t, formatCRC(Checksum([]byte("hello"))), s.DataCRC)
	assert.Empty(t, s.ResourceCRC)
}

func TestSummaryRows(t *testing.T) {
	s := summaryFixture(t).Summary()

	assert.Equal(t, []string{"Field", "Value"}, s.Headers())
	rows := s.Rows()
	require.Len(t, rows, 8)
	assert.Equal(t, []string{"Name", "hello.txt"}, rows[0])
	assert.Equal(t, []string{"Data length", "5"}, rows[4])
	assert.Equal(t, "Data CRC", rows[7][0])
}

func TestPrintSummary(t *testing.T) {
	c := summaryFixture(t)

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, PrintSummary(&buf, c, "table"))
		assert.Contains(t, buf.String(), "hello.txt")
		assert.Contains(t, buf.String(), "Resource length")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, PrintSummary(&buf, c, "json"))

		var got Summary
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, c.Summary(), got)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, PrintSummary(&buf, c, "yaml"))

		var got Summary
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, c.Summary(), got)
	})

	t.Run("invalid format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, PrintSummary(&buf, c, "xml"))
		assert.Zero(t, buf.Len())
	})
}
