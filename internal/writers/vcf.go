package writers

import (
	"errors"
	"io"
	"syscall"

	"sawshark/internal/vcf"
)

// ErrClosed is returned by Write after Close.
var ErrClosed = errors.New("writers: write after close")

// IsBrokenPipe reports whether err means the reader of stdout went away:
// a closed pipe (`sawshark in.vcf | head`) or a reset socket. Such runs
// exit 0.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrClosedPipe)
}

// VCF is the record sink for a run. The header is emitted with the first
// record (or on Close for an empty input); nothing is written before that.
type VCF struct {
	w       *vcf.Writer
	written int
	closed  bool
}

// NewVCF returns a sink writing h followed by records to out.
func NewVCF(out io.Writer, h *vcf.Header) *VCF {
	return &VCF{w: vcf.NewWriter(out, h)}
}

func (s *VCF) Write(rec *vcf.Record) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.w.Write(rec); err != nil {
		return err
	}
	s.written++
	return nil
}

// Written returns the number of records accepted so far.
func (s *VCF) Written() int { return s.written }

// Close flushes the header (if still pending) and buffered records.
func (s *VCF) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.w.Flush()
}
