package vcf

import (
	"bytes"
	"strconv"
)

// Fixed column positions.
const (
	ColChrom = iota
	ColPos
	ColID
	ColRef
	ColAlt
	ColQual
	ColFilter
	ColInfo

	MinColumns = ColInfo + 1
)

// Missing is the VCF placeholder for an absent value.
const Missing = "."

// Record is one VCF data line split into columns. The column slices alias
// a private copy of the line, so a Record stays valid after the reader
// moves on.
type Record struct {
	fields [][]byte
	pos    int
}

// ParseRecord splits a data line (without its newline) into a Record.
// The returned error is one of ErrTooFewColumns, ErrBadPos or ErrEmptyRef;
// the Reader wraps it into a ParseError.
func ParseRecord(line []byte) (*Record, error) {
	line = bytes.Clone(line)
	fields := bytes.Split(line, []byte{'\t'})
	if len(fields) < MinColumns {
		return nil, ErrTooFewColumns
	}
	pos, err := strconv.Atoi(string(fields[ColPos]))
	if err != nil {
		return nil, ErrBadPos
	}
	if len(fields[ColRef]) == 0 {
		return nil, ErrEmptyRef
	}
	return &Record{fields: fields, pos: pos}, nil
}

func (r *Record) Chrom() string { return string(r.fields[ColChrom]) }
func (r *Record) Pos() int      { return r.pos }
func (r *Record) ID() string    { return string(r.fields[ColID]) }
func (r *Record) Ref() []byte   { return r.fields[ColRef] }

// Alt returns the ALT alleles; an ALT column of "." yields none.
func (r *Record) Alt() [][]byte {
	alt := r.fields[ColAlt]
	if string(alt) == Missing || len(alt) == 0 {
		return nil
	}
	return bytes.Split(alt, []byte{','})
}

// Alleles returns REF followed by every ALT allele.
func (r *Record) Alleles() [][]byte {
	alt := r.Alt()
	out := make([][]byte, 0, 1+len(alt))
	out = append(out, r.Ref())
	return append(out, alt...)
}


// Column returns the raw bytes of column i.
func (r *Record) Column(i int) []byte { return r.fields[i] }

// Info returns the value of an INFO key. Flags report ok with an empty value.
func (r *Record) Info(key string) (string, bool) {
	info := r.fields[ColInfo]
	if string(info) == Missing {
		return "", false
	}
	for _, kv := range bytes.Split(info, []byte{';'}) {
		k, v, _ := bytes.Cut(kv, []byte{'='})
		if string(k) == key {
			return string(v), true
		}
	}
	return "", false
}

// SetInfo sets key=value in the INFO column, replacing any existing entry
// for key and a lone "." placeholder.
func (r *Record) SetInfo(key, value string) {
	entry := []byte(key + "=" + value)
	info := r.fields[ColInfo]
	if len(info) == 0 || string(info) == Missing {
		r.fields[ColInfo] = entry
		return
	}
	parts := bytes.Split(info, []byte{';'})
	out := make([][]byte, 0, len(parts)+1)
	replaced := false
	for _, kv := range parts {
		k, _, _ := bytes.Cut(kv, []byte{'='})
		if string(k) == key {
			if !replaced {
				out = append(out, entry)
				replaced = true
			}
			continue
		}
		out = append(out, kv)
	}
	if !replaced {
		out = append(out, entry)
	}
	r.fields[ColInfo] = bytes.Join(out, []byte{';'})
}

// AppendTo appends the tab-joined line and a newline to dst.
func (r *Record) AppendTo(dst []byte) []byte {
	for i, f := range r.fields {
		if i > 0 {
			dst = append(dst, '\t')
		}
		dst = append(dst, f...)
	}
	return append(dst, '\n')
}

func (r *Record) String() string { return string(bytes.TrimSuffix(r.AppendTo(nil), []byte{'\n'})) }
