// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"sawshark/internal/version"
)

// UsageCommon installs the Usage() handler on fs.
// extra prints tool-specific sections (usage line, examples) before the flag blocks.
func UsageCommon(fs *flag.FlagSet, name string, modes []string, extra func(out io.Writer)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – repeat annotation of structural variants\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "      --vcf file              Input VCF (plain, gzip/BGZF, zstd, lz4) or '-' for STDIN [*]")
		fmt.Fprintln(out, "                              A single positional path is accepted instead")

		fmt.Fprintln(out, "\nAnnotation:")
		fmt.Fprintf(out, "      --mode string           Annotation mode: %s [%s]\n", strings.Join(modes, " | "), def("mode"))
		fmt.Fprintln(out, "      --library file          FASTA of reference elements replacing the built-in set")

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintln(out, "  -t, --threads int           Worker threads [all CPUs]")
		fmt.Fprintf(out, "      --stream                Write records as soon as they are in order [%s]\n", def("stream"))
		fmt.Fprintf(out, "      --window int            Max records in flight with --stream (0=threads*64) [%s]\n", def("window"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --metrics-file file     Write Prometheus textfile metrics on completion")
		fmt.Fprintf(out, "      --log-format string     Log format: text | json [%s]\n", def("log-format"))
		fmt.Fprintf(out, "  -q, --quiet                 Only log warnings and errors [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
