// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"sawshark/internal/classify"
	"sawshark/internal/cli"
	"sawshark/internal/input"
	"sawshark/internal/library"
	"sawshark/internal/logging"
	"sawshark/internal/metrics"
	"sawshark/internal/pipeline"
	"sawshark/internal/runutil"
	"sawshark/internal/vcf"
	"sawshark/internal/version"
	"sawshark/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 2
	ExitUsage       = 64 // EX_USAGE
	ExitInterrupted = 130
)

// Header additions.
const (
	InfoKey         = pipeline.DefaultInfoKey
	InfoDescription = "Repeat annotation of structural variant"
	MetaVersion     = "sawshark_version"
	MetaCmdline     = "sawshark_cmdline"
)

type Options struct {
	Input   string
	Library string
	Mode    library.Mode

	Threads int
	Stream  bool
	Window  int

	MetricsFile string
	Cmdline     string
}

// AnnotateHeader returns a copy of h with the SVANN declaration (unless
// already present) and the version and command-line meta lines.
func AnnotateHeader(h *vcf.Header, cmdline string) *vcf.Header {
	out := h.Clone()
	out.AddInfo(InfoKey, ".", "String", InfoDescription)
	out.AddMeta(MetaVersion, version.Version)
	out.AddMeta(MetaCmdline, cmdline)
	return out
}

// Run annotates o.Input and writes the result to stdout.
func Run(parent context.Context, stdout io.Writer, log *logging.Logger, o Options) error {
	threads := runutil.EffectiveThreads(o.Threads)
	window, warns := runutil.ResolveWindow(o.Stream, o.Window, threads, pipeline.DefaultWindowPerThread)
	for _, w := range warns {
		log.Warn(w)
	}

	lib, err := LibraryFactory{Mode: o.Mode, Path: o.Library}.Build()
	if err != nil {
		return err
	}
	log.Info("library ready",
		"mode", string(o.Mode),
		"source", librarySource(o.Library),
		"entries", lib.Len(),
		"labels", strings.Join(lib.Labels(), ","))

	var prom *metrics.Prometheus
	var coll metrics.Collector = metrics.Noop{}
	if o.MetricsFile != "" {
		prom = metrics.NewPrometheus(log.RunID(), version.Version)
		coll = prom
	}
	ann, err := AnnotatorFactory{Collector: coll}.New(lib)
	if err != nil {
		return err
	}

	rc, err := input.Open(o.Input)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	rd, err := vcf.NewReader(rc)
	if err != nil {
		return fmt.Errorf("%s: %w", o.Input, err)
	}
	fileformat, ok := rd.Header().Meta("fileformat")
	if !ok {
		fileformat = "unknown"
	}
	sink := writers.NewVCF(stdout, AnnotateHeader(rd.Header(), o.Cmdline))

	prog := runutil.NewProgress(log, runutil.ProgressInterval)
	log.Info("annotating", "input", o.Input, "fileformat", fileformat, "threads", threads, "stream", o.Stream, "window", window)
	start := time.Now()

	stats, err := pipeline.Run(parent, pipeline.Config{
		Threads:   threads,
		Streaming: o.Stream,
		Window:    window,
		InfoKey:   InfoKey,
		Observe:   func(p pipeline.Pending) { prog.Add(p.Result.Reason == classify.Annotated) },
	}, rd, ann, sink)
	if err != nil {
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}
	log.LogSummary(stats.Records, sink.Written(), stats.Annotated, stats.ByLabel, time.Since(start))

	if prom != nil {
		if err := prom.WriteTextfile(o.MetricsFile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

func librarySource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}

// ExitCode maps a run error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, cli.ErrUsage):
		return ExitUsage
	default:
		return ExitFailure
	}
}
