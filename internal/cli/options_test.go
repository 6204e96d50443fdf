// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sawshark/internal/library"
	"sawshark/internal/logging"
)

func tempVCF(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "in.vcf")
	if err := os.WriteFile(p, []byte("#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(NewBareFlagSet("test"), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func mustFail(t *testing.T, args ...string) error {
	t.Helper()
	_, err := ParseArgs(NewBareFlagSet("test"), args)
	if err == nil {
		t.Fatalf("expected error for %v", args)
	}
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("want ErrUsage, got %v", err)
	}
	return err
}

func TestDefaults(t *testing.T) {
	in := tempVCF(t)
	o := mustParse(t, "--vcf", in)
	if o.Input != in || o.Mode != library.ModePBSV || o.Threads != 0 || o.Stream || o.LogFormat != logging.FormatText {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestPositionalInput(t *testing.T) {
	in := tempVCF(t)
	o := mustParse(t, "--threads", "4", in, "--stream", "-q")
	if o.Input != in || o.Threads != 4 || !o.Stream || !o.Quiet {
		t.Errorf("bad positional parse %+v", o)
	}
	o = mustParse(t, "-")
	if o.Input != "-" {
		t.Errorf("stdin: %+v", o)
	}
}

func TestAllFlags(t *testing.T) {
	in := tempVCF(t)
	lib := filepath.Join(t.TempDir(), "lib.fa")
	if err := os.WriteFile(lib, []byte(">X\nACGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	o := mustParse(t, "--vcf", in, "--mode", "PBSV", "--library", lib, "-t", "2",
		"--stream", "--window", "9", "--metrics-file", "m.prom", "--log-format", "json")
	if o.Library != lib || o.Threads != 2 || o.Window != 9 || o.MetricsFile != "m.prom" || o.LogFormat != logging.FormatJSON {
		t.Errorf("bad parse %+v", o)
	}
}

func TestUsageErrors(t *testing.T) {
	in := tempVCF(t)
	cases := map[string][]string{
		"no input":        {},
		"missing file":    {"--vcf", filepath.Join(t.TempDir(), "nope.vcf")},
		"directory":       {"--vcf", t.TempDir()},
		"zero threads":    {"--vcf", in, "--threads", "0"},
		"negative thread": {"--vcf", in, "-t", "-1"},
		"unknown mode":    {"--vcf", in, "--mode", "sniffles"},
		"bad log format":  {"--vcf", in, "--log-format", "xml"},
		"negative window": {"--vcf", in, "--window", "-2"},
		"two inputs":      {in, in},
		"conflict":        {"--vcf", in, "-"},
		"missing library": {"--vcf", in, "--library", "nope.fa"},
		"unknown flag":    {"--vcf", in, "--bogus"},
		"bad int":         {"--vcf", in, "--threads", "many"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) { mustFail(t, args...) })
	}
}

func TestGlobMatchingManyFilesIsUsageError(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.vcf", "b.vcf"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("#CHROM\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	_, err := ParseArgs(NewBareFlagSet("test"), []string{filepath.Join(dir, "*.vcf")})
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("want ErrUsage, got %v", err)
	}
	if !strings.Contains(err.Error(), "single VCF") || !strings.Contains(err.Error(), "matches 2 files") {
		t.Errorf("unexpected message: %v", err)
	}

	o := mustParse(t, filepath.Join(dir, "a.*"))
	if o.Input != filepath.Join(dir, "a.vcf") {
		t.Errorf("single-match glob resolved to %q", o.Input)
	}
}

func TestHelpAndVersion(t *testing.T) {
	for _, a := range []string{"-h", "--help"} {
		if _, err := ParseArgs(NewBareFlagSet("test"), []string{a}); !errors.Is(err, flag.ErrHelp) {
			t.Errorf("%s: want ErrHelp, got %v", a, err)
		}
	}
	o, err := ParseArgs(NewBareFlagSet("test"), []string{"-v"})
	if err != nil || !o.Version {
		t.Fatalf("version: %v %+v", err, o)
	}
}

func TestUsageText(t *testing.T) {
	fs := NewFlagSet("sawshark")
	var sb strings.Builder
	fs.SetOutput(&sb)
	if _, err := ParseArgs(fs, []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatal(err)
	}
	fs.Usage()
	out := sb.String()
	for _, want := range []string{"sawshark", "--vcf", "--mode", "pbsv", "--threads", "--stream"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q:\n%s", want, out)
		}
	}
}
