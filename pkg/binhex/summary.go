package binhex

import (
	"fmt"
	"io"
	"strconv"

	"github.com/marmos91/binhex/internal/output"
)

// Summary describes a container's header fields and CRCs for display.
type Summary struct {
	Name           string `json:"name" yaml:"name"`
	FileType       string `json:"file_type" yaml:"file_type"`
	Author         string `json:"author" yaml:"author"`
	Flags          string `json:"flags" yaml:"flags"`
	DataLength     uint32 `json:"data_length" yaml:"data_length"`
	ResourceLength uint32 `json:"resource_length" yaml:"resource_length"`
	HeaderCRC      string `json:"header_crc" yaml:"header_crc"`
	DataCRC        string `json:"data_crc,omitempty" yaml:"data_crc,omitempty"`
	ResourceCRC    string `json:"resource_crc,omitempty" yaml:"resource_crc,omitempty"`
}

// Summary returns the display form of c.
func (c *Container) Summary() Summary {
	s := Summary{
		Name:           string(c.Name),
		FileType:       formatCode(c.FileType[:]),
		Author:         formatCode(c.Author[:]),
		Flags:          fmt.Sprintf("0x%02X%02X", c.Flags[0], c.Flags[1]),
		DataLength:     c.DataLength,
		ResourceLength: c.ResourceLength,
		HeaderCRC:      formatCRC(c.HeaderCRC),
	}
	if c.Data != nil {
		s.DataCRC = formatCRC(c.Data.CRC)
	}
	if c.Resource != nil {
		s.ResourceCRC = formatCRC(c.Resource.CRC)
	}
	return s
}

// Headers implements output.TableRenderer.
func (s Summary) Headers() []string {
	return []string{"Field", "Value"}
}

// Rows implements output.TableRenderer.
func (s Summary) Rows() [][]string {
	rows := [][]string{
		{"Name", s.Name},
		{"Type", s.FileType},
		{"Creator", s.Author},
		{"Flags", s.Flags},
		{"Data length", strconv.FormatUint(uint64(s.DataLength), 10)},
		{"Resource length", strconv.FormatUint(uint64(s.ResourceLength), 10)},
		{"Header CRC", s.HeaderCRC},
	}
	if s.DataCRC != "" {
		rows = append(rows, []string{"Data CRC", s.DataCRC})
	}
	if s.ResourceCRC != "" {
		rows = append(rows, []string{"Resource CRC", s.ResourceCRC})
	}
	return rows
}

// PrintSummary writes the summary of c to w as a table, JSON or YAML.
func PrintSummary(w io.Writer, c *Container, format string) error {
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	return output.NewPrinter(w, f).Print(c.Summary())
}

// formatCode renders a type or creator code as text when every byte is
// printable ASCII, and as hex otherwise.
func formatCode(code []byte) string {
	for _, b := range code {
		if b < 0x20 || b > 0x7E {
			return "0x" + fmt.Sprintf("%X", code)
		}
	}
	return string(code)
}

func formatCRC(crc uint16) string {
	return fmt.Sprintf("0x%04X", crc)
}
