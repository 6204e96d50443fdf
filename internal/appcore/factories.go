package appcore

import (
	"fmt"

	"sawshark/internal/align"
	"sawshark/internal/classify"
	"sawshark/internal/library"
	"sawshark/internal/metrics"
	"sawshark/internal/pipeline"
)

// ---------------- Library ----------------

// LibraryFactory builds the run's annotation library: the mode's built-in
// reference set, or the entries of Path under the mode's thresholds.
type LibraryFactory struct {
	Mode library.Mode
	Path string
}

func (f LibraryFactory) Build() (*library.Library, error) {
	if f.Path == "" {
		return library.Build(f.Mode)
	}
	entries, err := library.LoadFASTA(f.Path)
	if err != nil {
		return nil, fmt.Errorf("loading library: %w", err)
	}
	lib, err := library.BuildFrom(f.Mode, entries)
	if err != nil {
		return nil, fmt.Errorf("library %s: %w", f.Path, err)
	}
	return lib, nil
}

// ---------------- Annotator ----------------

// AnnotatorFactory wires the classifier to the default aligner and, if
// set, a metrics collector.
type AnnotatorFactory struct {
	Scoring   align.Scoring
	Collector metrics.Collector
}

func (f AnnotatorFactory) New(lib *library.Library) (pipeline.Annotator, error) {
	sc := f.Scoring
	if sc == (align.Scoring{}) {
		sc = align.DefaultScoring
	}
	m, err := align.NewSemiGlobal(sc)
	if err != nil {
		return nil, err
	}
	return metrics.Instrument(classify.New(lib, m), f.Collector), nil
}
