// internal/library/load.go
package library

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"sawshark/internal/fasta"
	"sawshark/internal/input"
)

//go:embed data/pbsv.fa
var pbsvFASTA []byte

func pbsvEntries() ([]Entry, error) {
	return ReadEntries(bytes.NewReader(pbsvFASTA))
}

// ReadEntries turns every FASTA record of r into an Entry labelled with the
// record ID.
func ReadEntries(r io.Reader) ([]Entry, error) {
	recs, err := fasta.ReadAll(r)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, NewEntry(rec.ID, rec.Seq))
	}
	return out, nil
}

// LoadFASTA reads entries from a (possibly compressed) FASTA file.
func LoadFASTA(path string) ([]Entry, error) {
	rc, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	entries, err := ReadEntries(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}
