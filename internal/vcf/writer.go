package vcf

import (
	"bufio"
	"io"
)

// Writer writes a header followed by records. The header goes out on the
// first Write or Flush, so a Writer that is never used produces no output.
type Writer struct {
	bw     *bufio.Writer
	hdr    *Header
	headed bool
	buf    []byte
}

func NewWriter(w io.Writer, h *Header) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 1<<16), hdr: h}
}

func (w *Writer) writeHeader() error {
	if w.headed {
		return nil
	}
	w.headed = true
	_, err := w.hdr.WriteTo(w.bw)
	return err
}

func (w *Writer) Write(rec *Record) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	w.buf = rec.AppendTo(w.buf[:0])
	_, err := w.bw.Write(w.buf)
	return err
}

// Flush writes the header if still pending and flushes buffered output.
func (w *Writer) Flush() error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	return w.bw.Flush()
}
