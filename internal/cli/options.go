// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"sawshark/internal/clibase"
	"sawshark/internal/cliutil"
	"sawshark/internal/input"
	"sawshark/internal/library"
	"sawshark/internal/logging"
)

// ErrUsage marks errors caused by bad command-line input.
var ErrUsage = errors.New("usage error")

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input   string
	Library string

	// Annotation
	Mode library.Mode

	// Performance
	Threads int // 0 = all CPUs
	Stream  bool
	Window  int

	// Misc
	MetricsFile string
	LogFormat   logging.Format
	Quiet       bool
	Version     bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	modes := make([]string, 0, 1)
	for _, m := range library.Modes() {
		modes = append(modes, string(m))
	}
	clibase.UsageCommon(fs, name, modes, func(out io.Writer) {
		fmt.Fprintf(out, "Usage:\n  %s [flags] --vcf in.vcf[.gz] > out.vcf\n  %s [flags] in.vcf[.gz] > out.vcf\n", name, name)
		fmt.Fprintf(out, "\nExamples:\n  %s --threads 8 --vcf calls.vcf.gz > calls.svann.vcf\n", name)
		fmt.Fprintf(out, "  bcftools view calls.bcf | %s --stream - > calls.svann.vcf\n", name)
	})
	return fs
}

type parsed struct {
	input, mode, logFormat string
	help                   bool
}

func register(fs *flag.FlagSet, o *Options, p *parsed) {
	fs.StringVar(&p.input, "vcf", "", "input VCF or '-' [*]")
	fs.StringVar(&o.Library, "library", "", "reference FASTA replacing the built-in set")
	fs.StringVar(&p.mode, "mode", string(library.ModePBSV), "annotation mode")

	fs.IntVar(&o.Threads, "threads", 0, "worker threads (default all CPUs)")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")
	fs.BoolVar(&o.Stream, "stream", false, "write records as soon as they are in order")
	fs.IntVar(&o.Window, "window", 0, "max records in flight with --stream (0 = threads*64)")

	fs.StringVar(&o.MetricsFile, "metrics-file", "", "Prometheus textfile to write on completion")
	fs.StringVar(&p.logFormat, "log-format", string(logging.FormatText), "log format: text | json")
	fs.BoolVar(&o.Quiet, "quiet", false, "only log warnings and errors")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "version", false, "print version and exit")
	fs.BoolVar(&o.Version, "v", false, "alias of --version")
	fs.BoolVar(&p.help, "help", false, "show help")
	fs.BoolVar(&p.help, "h", false, "alias of --help")
}

// ParseArgs registers and parses all flags and returns a validated Options.
// It returns flag.ErrHelp for -h/--help; other errors wrap ErrUsage.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var p parsed
	register(fs, &opt, &p)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opt, err
		}
		return opt, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if p.help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	threadsSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "threads" || f.Name == "t" {
			threadsSet = true
		}
	})
	if threadsSet && opt.Threads <= 0 {
		return opt, fmt.Errorf("%w: --threads must be > 0", ErrUsage)
	}

	input, err := cliutil.ResolveInput(p.input, posArgs)
	if err != nil {
		return opt, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	opt.Input = input

	if opt.Mode, err = library.ParseMode(p.mode); err != nil {
		return opt, fmt.Errorf("%w: --mode: %v", ErrUsage, err)
	}
	if opt.LogFormat, err = logging.ParseFormat(p.logFormat); err != nil {
		return opt, fmt.Errorf("%w: --log-format: %v", ErrUsage, err)
	}
	if opt.Window < 0 {
		return opt, fmt.Errorf("%w: --window must be ≥ 0", ErrUsage)
	}
	if err := Validate(opt); err != nil {
		return opt, err
	}
	return opt, nil
}

// Validate checks that referenced files exist.
func Validate(o Options) error {
	if o.Input != input.Stdin {
		if err := regularFile(o.Input); err != nil {
			return fmt.Errorf("%w: --vcf: %v", ErrUsage, err)
		}
	}
	if o.Library != "" {
		if err := regularFile(o.Library); err != nil {
			return fmt.Errorf("%w: --library: %v", ErrUsage, err)
		}
	}
	return nil
}

func regularFile(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	if st.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
