package vcf

import (
	"errors"
	"fmt"
)

var (
	// ErrBCF is returned when the input is binary BCF rather than text VCF.
	ErrBCF = errors.New("vcf: BCF input is not supported; convert it with 'bcftools view'")
	// ErrNoHeader is returned when the stream ends or data starts before "#CHROM".
	ErrNoHeader = errors.New("vcf: missing #CHROM header line")

	ErrTooFewColumns = errors.New("too few columns")
	ErrBadPos        = errors.New("POS is not an integer")
	ErrEmptyRef      = errors.New("empty REF allele")
)

// ParseError describes a malformed data line. Index is the 1-based record
// index (0 for header lines), Line the physical line number in the input.
type ParseError struct {
	Index int
	Line  int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("vcf: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("vcf: record %d (line %d): %v", e.Index, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
