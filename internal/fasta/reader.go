// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// Scan parses FASTA from r and calls emit once per record, in file order.
// Sequence lines are concatenated with surrounding whitespace removed.
// It returns promptly when ctx is done or emit returns an error.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id   string
		have bool
		seq  = make([]byte, 0, 4096)
	)

	flush := func() error {
		if !have {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	ln := 0
	for sc.Scan() {
		ln++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			have = true
			seq = seq[:0]
			continue
		}
		if !have {
			return fmt.Errorf("fasta line %d: sequence data before first '>' header", ln)
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadAll collects every record of r.
func ReadAll(r io.Reader) ([]Record, error) {
	var out []Record
	err := Scan(context.Background(), r, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	return out, err
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
