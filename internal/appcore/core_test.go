package appcore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"syscall"
	"testing"

	"sawshark/internal/cli"
	"sawshark/internal/vcf"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{context.Canceled, ExitInterrupted},
		{fmt.Errorf("write: %w", syscall.EPIPE), ExitOK},
		{fmt.Errorf("%w: bad", cli.ErrUsage), ExitUsage},
		{&vcf.ParseError{Index: 3, Line: 9, Err: vcf.ErrBadPos}, ExitFailure},
		{errors.New("other"), ExitFailure},
	}
	for _, c := range cases {
		if got := ExitCode(c.err); got != c.want {
			t.Errorf("ExitCode(%v)=%d want %d", c.err, got, c.want)
		}
	}
}

func TestAnnotateHeader(t *testing.T) {
	h := vcf.NewHeader([]string{"##fileformat=VCFv4.2"}, "")
	out := AnnotateHeader(h, "sawshark --vcf x.vcf")
	if !out.HasInfo(InfoKey) || h.HasInfo(InfoKey) {
		t.Fatal("SVANN must be added to the copy only")
	}
	if v, ok := out.Meta(MetaCmdline); !ok || v != "sawshark --vcf x.vcf" {
		t.Fatalf("cmdline meta = %q %v", v, ok)
	}
	again := AnnotateHeader(out, "x")
	n := 0
	for _, l := range again.MetaLines() {
		if strings.HasPrefix(l, "##INFO=<ID=SVANN,") {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("SVANN declared %d times", n)
	}
}
