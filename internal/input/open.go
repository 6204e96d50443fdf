// internal/input/open.go
package input

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Stdin is the path sentinel meaning "read standard input".
const Stdin = "-"

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path ("-" is stdin). Compression is detected from
// the leading magic bytes, so it also works on pipes: gzip (including BGZF,
// which is multi-member gzip), zstd and lz4 frames are decoded transparently.
func Open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser
	if path == Stdin {
		src = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
	}
	rc, err := Decode(src)
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	return rc, nil
}

// Decode wraps src with the decompressor its magic bytes call for. Closing
// the returned reader closes src.
func Decode(src io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(src, 64<<10)
	sig, _ := br.Peek(4)

	switch {
	case bytes.HasPrefix(sig, magicGzip):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, src}}, nil
	case bytes.HasPrefix(sig, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), src}}, nil
	case bytes.HasPrefix(sig, magicLZ4):
		return &multiReadCloser{Reader: lz4.NewReader(br), closers: []io.Closer{src}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{src}}, nil
}
