// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"sawshark/internal/appcore"
	"sawshark/internal/cli"
	"sawshark/internal/logging"
	"sawshark/internal/version"
	"sawshark/internal/writers"
)

const name = "sawshark"

// RunContext runs the tool as if invoked under its plain program name.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunProgram(parent, name, argv, stdout, stderr)
}

// RunProgram runs the tool. prog is argv[0] as invoked; it heads the
// command line recorded in the output header.
func RunProgram(parent context.Context, prog string, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stderr)
		fs.Usage()
		return appcore.ExitUsage
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return printTo(stdout, stderr, func(w io.Writer) {
				fs.SetOutput(w)
				fs.Usage()
			})
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = fmt.Fprintf(stderr, "Run '%s -h' for usage.\n", name)
		return appcore.ExitUsage
	}

	if opts.Version {
		return printTo(stdout, stderr, func(w io.Writer) {
			_, _ = fmt.Fprintf(w, "%s version %s\n", name, version.Version)
		})
	}

	level := slog.LevelInfo
	if opts.Quiet {
		level = slog.LevelWarn
	}
	log := logging.New(stderr, opts.LogFormat, level)
	cmdline := strings.Join(append([]string{prog}, argv...), " ")
	log.Info("starting", "version", version.Version)
	log.Info("command line", "cmdline", cmdline)

	err = appcore.Run(parent, stdout, log, appcore.Options{
		Input:       opts.Input,
		Library:     opts.Library,
		Mode:        opts.Mode,
		Threads:     opts.Threads,
		Stream:      opts.Stream,
		Window:      opts.Window,
		MetricsFile: opts.MetricsFile,
		Cmdline:     cmdline,
	})
	code := appcore.ExitCode(err)
	switch {
	case code == appcore.ExitInterrupted:
		log.Warn("interrupted")
	case err != nil && writers.IsBrokenPipe(err):
		log.Debug("output closed early", "error", err)
	case err != nil:
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return code
}

// printTo writes help/version text through a buffered writer and maps
// flush failures to exit codes.
func printTo(stdout, stderr io.Writer, fn func(io.Writer)) int {
	outw := bufio.NewWriter(stdout)
	fn(outw)
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitFailure
	}
	return appcore.ExitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
