package vcf

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Header holds the meta lines (without the trailing newline) and the
// "#CHROM" column line of a VCF file.
type Header struct {
	meta    []string
	columns string
}

// DefaultColumns is used when a Header is built from scratch.
const DefaultColumns = "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO"

// NewHeader returns a header with the given meta lines and column line.
// An empty columns string selects DefaultColumns.
func NewHeader(meta []string, columns string) *Header {
	if columns == "" {
		columns = DefaultColumns
	}
	return &Header{meta: append([]string(nil), meta...), columns: columns}
}

// MetaLines returns a copy of the "##" lines in file order.
func (h *Header) MetaLines() []string { return append([]string(nil), h.meta...) }

// Columns returns the "#CHROM" line.
func (h *Header) Columns() string { return h.columns }

// HasInfo reports whether an INFO field with the given ID is declared.
func (h *Header) HasInfo(id string) bool {
	for _, l := range h.meta {
		if infoID(l) == id {
			return true
		}
	}
	return false
}

// infoID returns the ID key of an ##INFO line. Commas and "ID=" inside a
// quoted value (typically Description) are not structure.
func infoID(line string) string {
	rest, ok := strings.CutPrefix(line, "##INFO=<")
	if !ok {
		return ""
	}
	rest = strings.TrimSuffix(rest, ">")
	inQuote, start := false, 0
	for i := 0; i <= len(rest); i++ {
		if i < len(rest) {
			switch rest[i] {
			case '\\':
				if i+1 < len(rest) {
					i++
				}
				continue
			case '"':
				inQuote = !inQuote
				continue
			case ',':
				if inQuote {
					continue
				}
			default:
				continue
			}
		}
		if v, ok := strings.CutPrefix(rest[start:i], "ID="); ok {
			return v
		}
		start = i + 1
	}
	return ""
}

// AddInfo declares an INFO field unless one with the same ID exists.
// It reports whether a line was added.
func (h *Header) AddInfo(id, number, typ, desc string) bool {
	if h.HasInfo(id) {
		return false
	}
	h.meta = append(h.meta, fmt.Sprintf("##INFO=<ID=%s,Number=%s,Type=%s,Description=%q>", id, number, typ, desc))
	return true
}

// AddMeta appends a "##key=value" line.
func (h *Header) AddMeta(key, value string) {
	h.meta = append(h.meta, "##"+key+"="+value)
}

// Meta returns the value of the first "##key=value" line.
func (h *Header) Meta(key string) (string, bool) {
	prefix := "##" + key + "="
	for _, l := range h.meta {
		if v, ok := strings.CutPrefix(l, prefix); ok {
			return v, true
		}
	}
	return "", false
}

// Clone returns a deep copy.
func (h *Header) Clone() *Header { return NewHeader(h.meta, h.columns) }

// WriteTo writes every meta line and the column line, each newline-terminated.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	for _, l := range h.meta {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString(h.columns)
	b.WriteByte('\n')
	return b.WriteTo(w)
}
