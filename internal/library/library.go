// internal/library/library.go
package library

import (
	"errors"
	"fmt"

	"sawshark/internal/dna"
)

var (
	// ErrEmptyLibrary is returned when a library would have no entries.
	ErrEmptyLibrary = errors.New("annotation library has no entries")
	// ErrEmptySequence is returned for an entry without sequence.
	ErrEmptySequence = errors.New("empty reference sequence")
)

// Entry is one reference element.
type Entry struct {
	Label   string
	Seq     []byte
	RevComp []byte
}

// NewEntry upper-cases seq and precomputes its reverse complement.
func NewEntry(label string, seq []byte) Entry {
	s := dna.Upper(seq)
	return Entry{Label: label, Seq: s, RevComp: dna.RevComp(s)}
}

// Thresholds are the two tunable fractions of an annotation mode.
type Thresholds struct {
	Similarity   float64 // minimum alignment score as a fraction of entry length
	SizeFraction float64 // minimum allele length as a fraction of entry length
}

func (t Thresholds) Validate() error {
	if !(t.Similarity > 0 && t.Similarity <= 1) {
		return fmt.Errorf("similarity fraction %v outside (0, 1]", t.Similarity)
	}
	if !(t.SizeFraction > 0 && t.SizeFraction <= 1) {
		return fmt.Errorf("size fraction %v outside (0, 1]", t.SizeFraction)
	}
	return nil
}

// Params are the thresholds of one entry.
type Params struct {
	MinScore     int
	MinAlleleLen int
}

// DeriveParams truncates len(e.Seq)*fraction toward zero for both thresholds.
func DeriveParams(e Entry, t Thresholds) Params {
	n := float64(len(e.Seq))
	return Params{
		MinScore:     int(n * t.Similarity),
		MinAlleleLen: int(n * t.SizeFraction),
	}
}

// Library pairs entries with their Params by index.
type Library struct {
	entries []Entry
	params  []Params
	thr     Thresholds
}

// New validates entries and thresholds and derives every entry's Params.
// Entry order is kept: it is the order the classifier tests them in.
func New(entries []Entry, t Thresholds) (*Library, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmptyLibrary
	}
	l := &Library{
		entries: make([]Entry, len(entries)),
		params:  make([]Params, len(entries)),
		thr:     t,
	}
	for i, e := range entries {
		if len(e.Seq) == 0 {
			return nil, fmt.Errorf("library entry %q: %w", e.Label, ErrEmptySequence)
		}
		if len(e.RevComp) != len(e.Seq) {
			e = NewEntry(e.Label, e.Seq)
		}
		l.entries[i] = e
		l.params[i] = DeriveParams(e, t)
	}
	return l, nil
}

func (l *Library) Len() int               { return len(l.entries) }
func (l *Library) Entry(i int) Entry      { return l.entries[i] }
func (l *Library) Params(i int) Params    { return l.params[i] }
func (l *Library) Thresholds() Thresholds { return l.thr }

// Labels returns the entry labels in library order.
func (l *Library) Labels() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Label
	}
	return out
}
