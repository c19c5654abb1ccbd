package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// File is a named in-memory export.
type File struct {
	Name string
	Data []byte
}

// Export serializes the currently visible rows, in row order, using the
// table's headers as field names. name is the base file name without
// extension.
func (v *View) Export(name, format string) (*File, error) {
	headers := v.table.Headers()
	visible := v.Visible()

	switch format {
	case FormatCSV:
		return &File{Name: name + ".csv", Data: exportCSV(headers, visible)}, nil
	case FormatJSON:
		data, err := exportJSON(headers, visible)
		if err != nil {
			return nil, err
		}
		return &File{Name: name + ".json", Data: data}, nil
	default:
		return nil, fmt.Errorf("table: unsupported export format %q", format)
	}
}

// exportCSV writes the header row then one line per row, every field quoted
// and embedded quotes doubled. encoding/csv quotes only when it must, so the
// all-quoted shape is written by hand.
func exportCSV(headers []string, rows []Row) []byte {
	var buf bytes.Buffer
	writeCSVLine(&buf, headers)
	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range headers {
			if i < len(row.Cells) {
				cells[i] = row.Cells[i]
			}
		}
		writeCSVLine(&buf, cells)
	}
	return buf.Bytes()
}

func writeCSVLine(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

// exportJSON writes an array of objects with keys in header order and
// two-space indentation. Keys are emitted by hand because encoders sort map
// keys, and the file must follow the table's column order.
func exportJSON(headers []string, rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, row := range rows {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		for j, header := range headers {
			if j > 0 {
				buf.WriteString(",")
			}
			key, err := json.Marshal(header)
			if err != nil {
				return nil, fmt.Errorf("table: encode header: %w", err)
			}
			cell := ""
			if j < len(row.Cells) {
				cell = row.Cells[j]
			}
			value, err := json.Marshal(cell)
			if err != nil {
				return nil, fmt.Errorf("table: encode cell: %w", err)
			}
			buf.WriteString("\n    ")
			buf.Write(key)
			buf.WriteString(": ")
			buf.Write(value)
		}
		buf.WriteString("\n  }")
	}
	if len(rows) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	return buf.Bytes(), nil
}
