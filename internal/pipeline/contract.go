// internal/pipeline/contract.go
package pipeline

import (
	"sawshark/internal/classify"
	"sawshark/internal/vcf"
)

// Source yields records with strictly increasing 1-based indices and
// io.EOF at the end. *vcf.Reader satisfies it.
type Source interface {
	Next() (int, *vcf.Record, error)
}

// Annotator is the minimal capability the workers need.
// *classify.Classifier satisfies it.
type Annotator interface {
	Classify(alleles [][]byte) (classify.Result, error)
}

// Sink receives records in input order. It is only ever called from one
// goroutine at a time.
type Sink interface {
	Write(rec *vcf.Record) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(rec *vcf.Record) error

func (f SinkFunc) Write(rec *vcf.Record) error { return f(rec) }

var (
	_ Source    = (*vcf.Reader)(nil)
	_ Annotator = (*classify.Classifier)(nil)
)
