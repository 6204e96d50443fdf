// Package classify decides which library entry, if any, labels a variant.
package classify

import (
	"fmt"

	"sawshark/internal/align"
	"sawshark/internal/library"
)

// SymbolicMarker opens a symbolic ALT allele such as <DEL> or <INS:ME>.
const SymbolicMarker = '<'

// Reason records why a record did or did not receive a label.
type Reason uint8

const (
	NoMatch Reason = iota
	Annotated
	SkipAlleleCount // not exactly one REF and one ALT
	SkipEmptyAlt
	SkipSymbolic
)

var reasonNames = [...]string{
	NoMatch:         "no_match",
	Annotated:       "annotated",
	SkipAlleleCount: "allele_count",
	SkipEmptyAlt:    "empty_alt",
	SkipSymbolic:    "symbolic_alt",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("reason(%d)", uint8(r))
}

// Result is the outcome of classifying one record.
type Result struct {
	Reason  Reason
	Label   string // set only when Reason == Annotated
	Entry   int    // library index of the matching entry, -1 if none
	OnRef   bool   // the REF allele matched rather than the ALT allele
	Reverse bool   // the entry's reverse complement matched
}

func skipped(r Reason) Result { return Result{Reason: r, Entry: -1} }

// Classifier tests alleles against a Library. It holds no mutable state and
// is safe for concurrent use as long as its Matcher is.
type Classifier struct {
	lib *library.Library
	m   align.Matcher
}

func New(lib *library.Library, m align.Matcher) *Classifier {
	return &Classifier{lib: lib, m: m}
}

// Classify takes the record's alleles, REF first. Entries are tried in
// library order and the first one that matches wins; an entry is only tried
// when the ALT allele is at least its minimum allele length.
func (c *Classifier) Classify(alleles [][]byte) (Result, error) {
	if len(alleles) != 2 {
		return skipped(SkipAlleleCount), nil
	}
	ref, alt := alleles[0], alleles[1]
	if len(alt) == 0 {
		return skipped(SkipEmptyAlt), nil
	}
	if alt[0] == SymbolicMarker {
		return skipped(SkipSymbolic), nil
	}

	for i := 0; i < c.lib.Len(); i++ {
		p := c.lib.Params(i)
		if len(alt) < p.MinAlleleLen {
			continue
		}
		e := c.lib.Entry(i)
		for k, allele := range [2][]byte{alt, ref} {
			onRef := k == 1
			for _, rev := range [2]bool{false, true} {
				pattern := e.Seq
				if rev {
					pattern = e.RevComp
				}
				ok, err := c.m.Match(pattern, allele, p.MinScore)
				if err != nil {
					return Result{}, fmt.Errorf("matching %s: %w", e.Label, err)
				}
				if ok {
					return Result{Reason: Annotated, Label: e.Label, Entry: i, OnRef: onRef, Reverse: rev}, nil
				}
			}
		}
	}
	return skipped(NoMatch), nil
}
