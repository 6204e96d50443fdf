package vcf

import (
	"bufio"
	"bytes"
	"io"
)

// MaxLineSize bounds a single input line.
const MaxLineSize = 256 << 20

// Reader yields VCF records in input order with 1-based indices.
type Reader struct {
	sc    *bufio.Scanner
	hdr   *Header
	line  int
	index int
}

// NewReader consumes the header through the "#CHROM" line.
func NewReader(r io.Reader) (*Reader, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	vr := &Reader{sc: sc}

	var meta []string
	for sc.Scan() {
		vr.line++
		b := trimCR(sc.Bytes())
		if vr.line == 1 && bytes.HasPrefix(b, []byte("BCF")) {
			return nil, ErrBCF
		}
		switch {
		case len(b) == 0:
			continue
		case bytes.HasPrefix(b, []byte("##")):
			meta = append(meta, string(b))
		case bytes.HasPrefix(b, []byte("#")):
			vr.hdr = NewHeader(meta, string(b))
			return vr, nil
		default:
			return nil, &ParseError{Line: vr.line, Err: ErrNoHeader}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nil, ErrNoHeader
}

// Header returns the parsed header. Callers that edit it should Clone first.
func (r *Reader) Header() *Header { return r.hdr }

// Next returns the next record and its index, or io.EOF.
func (r *Reader) Next() (int, *Record, error) {
	for r.sc.Scan() {
		r.line++
		b := trimCR(r.sc.Bytes())
		if len(b) == 0 {
			continue
		}
		r.index++
		rec, err := ParseRecord(b)
		if err != nil {
			return r.index, nil, &ParseError{Index: r.index, Line: r.line, Err: err}
		}
		return r.index, rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return r.index, nil, err
	}
	return r.index, nil, io.EOF
}

func trimCR(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\r' {
		return b[:n-1]
	}
	return b
}
