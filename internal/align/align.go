// internal/align/align.go
package align

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

var (
	// ErrEmptyPattern is returned when the pattern sequence has no symbols.
	ErrEmptyPattern = errors.New("align: empty pattern")
	// ErrEmptyText is returned by Score when the text sequence has no symbols.
	ErrEmptyText = errors.New("align: empty text")
)

// Matcher reports whether pattern aligns to text with a score of at least minScore.
type Matcher interface {
	Match(pattern, text []byte, minScore int) (bool, error)
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc func(pattern, text []byte, minScore int) (bool, error)

func (f MatcherFunc) Match(pattern, text []byte, minScore int) (bool, error) {
	return f(pattern, text, minScore)
}

// Scoring holds the substitution and affine gap parameters. A gap of
// length k costs GapOpen + (k-1)*GapExtend.
type Scoring struct {
	Match     int
	Mismatch  int
	GapOpen   int
	GapExtend int
}

// DefaultScoring is the pbsv-compatible parameter set.
var DefaultScoring = Scoring{Match: 1, Mismatch: -2, GapOpen: 2, GapExtend: 1}

// ErrInvalidScoring describes a rejected Scoring.
type ErrInvalidScoring struct {
	Scoring Scoring
	Reason  string
}

func (e *ErrInvalidScoring) Error() string {
	return fmt.Sprintf("align: invalid scoring %+v: %s", e.Scoring, e.Reason)
}

// Validate checks the parameters once, before any alignment runs.
func (s Scoring) Validate() error {
	switch {
	case s.Match <= 0:
		return &ErrInvalidScoring{Scoring: s, Reason: "match score must be positive"}
	case s.Mismatch >= s.Match:
		return &ErrInvalidScoring{Scoring: s, Reason: "mismatch score must be below match score"}
	case s.GapOpen < 0 || s.GapExtend < 0:
		return &ErrInvalidScoring{Scoring: s, Reason: "gap penalties must be non-negative"}
	}
	return nil
}

// symbol classes: A C G T, everything else shares one wildcard class.
var class [256]uint8

func init() {
	for i := range class {
		class[i] = 4
	}
	for i, b := range []byte("ACGT") {
		class[b] = uint8(i)
		class[b+'a'-'A'] = uint8(i)
	}
}

const negInf = math.MinInt32 / 2

type scratch struct {
	h []int32
	f []int32
}

var scratchPool = sync.Pool{New: func() any { return new(scratch) }}

func (s *scratch) grow(n int) {
	if cap(s.h) < n {
		s.h = make([]int32, n)
		s.f = make([]int32, n)
	}
	s.h = s.h[:n]
	s.f = s.f[:n]
}

// SemiGlobal scores pattern against text with a semi-global affine-gap
// alignment: leading gaps are free in both sequences, trailing gaps are free
// in text only. The reported score is the maximum over the last row of the
// DP table, i.e. every alignment must run to the end of pattern.
//
// SemiGlobal is immutable and safe for concurrent use.
type SemiGlobal struct {
	sc Scoring
}

// NewSemiGlobal validates sc and returns an aligner.
func NewSemiGlobal(sc Scoring) (*SemiGlobal, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &SemiGlobal{sc: sc}, nil
}

// Match implements Matcher. An empty text never matches.
func (a *SemiGlobal) Match(pattern, text []byte, minScore int) (bool, error) {
	if len(pattern) == 0 {
		return false, ErrEmptyPattern
	}
	if len(text) == 0 {
		return false, nil
	}
	return int(a.lastRowMax(pattern, text)) >= minScore, nil
}

// Score returns the last-row maximum alignment score of pattern against text.
func (a *SemiGlobal) Score(pattern, text []byte) (int, error) {
	if len(pattern) == 0 {
		return 0, ErrEmptyPattern
	}
	if len(text) == 0 {
		return 0, ErrEmptyText
	}
	return int(a.lastRowMax(pattern, text)), nil
}

func (a *SemiGlobal) lastRowMax(pattern, text []byte) int32 {
	var (
		match    = int32(a.sc.Match)
		mismatch = int32(a.sc.Mismatch)
		open     = int32(a.sc.GapOpen)
		ext      = int32(a.sc.GapExtend)
		n        = len(text)
	)

	s := scratchPool.Get().(*scratch)
	defer scratchPool.Put(s)
	s.grow(n + 1)
	h, f := s.h, s.f
	for j := range h {
		h[j] = 0
		f[j] = negInf
	}

	// h holds row i-1 on entry to each outer iteration; h[0] stays 0.
	for i := 0; i < len(pattern); i++ {
		pc := class[pattern[i]]
		diag := int32(0)
		left := int32(0)
		e := int32(negInf)
		for j := 1; j <= n; j++ {
			up := h[j]
			e = max(e-ext, left-open)
			fj := max(f[j]-ext, up-open)
			f[j] = fj
			sub := mismatch
			if pc == class[text[j-1]] {
				sub = match
			}
			v := max(diag+sub, e, fj)
			diag = up
			h[j] = v
			left = v
		}
	}

	best := h[1]
	for j := 2; j <= n; j++ {
		if h[j] > best {
			best = h[j]
		}
	}
	return best
}
