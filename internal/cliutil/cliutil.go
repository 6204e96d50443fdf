// internal/cliutil/cliutil.go
package cliutil

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// Stdin is the positional that selects standard input.
const Stdin = "-"

var (
	// ErrNoInput is returned when neither --vcf nor a positional names the input.
	ErrNoInput = errors.New("an input VCF is required (--vcf FILE or '-')")
	// ErrMultipleInputs is returned when more than one input is named.
	ErrMultipleInputs = errors.New("sawshark reads a single VCF per run")
)

// takesValue reports whether the named flag consumes the following
// argument. Unknown names are assumed to, so fs.Parse reports them.
func takesValue(fs *flag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	if f == nil {
		return true
	}
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return !ok || !bf.IsBoolFlag()
}

// SplitFlagsAndPositionals separates flags (with their values) from
// positionals so flags may follow the input path. "-" is a positional and
// everything after "--" is positional. Use before fs.Parse(flagArgs).
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == Stdin || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		name, _, inline := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !inline && takesValue(fs, name) && i+1 < len(argv) {
			i++
			flagArgs = append(flagArgs, argv[i])
		}
	}
	return flagArgs, posArgs
}

// ResolveInput picks the run's single input from the --vcf value and the
// positionals. A positional may be a glob, but it must match exactly one
// file; "-" is passed through. When both are given they must agree.
func ResolveInput(flagVal string, posArgs []string) (string, error) {
	if len(posArgs) > 1 {
		return "", fmt.Errorf("%w: got %d positional inputs", ErrMultipleInputs, len(posArgs))
	}
	if len(posArgs) == 0 {
		if flagVal == "" {
			return "", ErrNoInput
		}
		return flagVal, nil
	}

	pos := posArgs[0]
	if pos != Stdin && strings.ContainsAny(pos, "*?[") {
		m, err := filepath.Glob(pos)
		if err != nil {
			return "", fmt.Errorf("bad glob %q: %v", pos, err)
		}
		switch len(m) {
		case 0:
			return "", fmt.Errorf("no input matched %q", pos)
		case 1:
			pos = m[0]
		default:
			return "", fmt.Errorf("%w: %q matches %d files", ErrMultipleInputs, posArgs[0], len(m))
		}
	}
	if flagVal != "" && flagVal != pos {
		return "", fmt.Errorf("--vcf %q conflicts with positional %q", flagVal, pos)
	}
	return pos, nil
}
