// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"sawshark/internal/classify"
	"sawshark/internal/vcf"
)

// DefaultInfoKey is the INFO key that carries the label.
const DefaultInfoKey = "SVANN"

// DefaultWindowPerThread sizes the streaming window when Window is 0.
const DefaultWindowPerThread = 64

// Config controls the classification pipeline.
type Config struct {
	Threads   int    // number of worker goroutines (>=1)
	Streaming bool   // emit through the Reorderer instead of sorting after the barrier
	Window    int    // max records in flight when Streaming; 0 means Threads*DefaultWindowPerThread
	InfoKey   string // INFO key for the label; "" means DefaultInfoKey

	// Observe, if set, is called for every record in output order just
	// before it is handed to the sink.
	Observe func(p Pending)
}

func (c Config) withDefaults() Config {
	if c.Threads < 1 {
		c.Threads = 1
	}
	if c.Window <= 0 {
		c.Window = c.Threads * DefaultWindowPerThread
	}
	if c.InfoKey == "" {
		c.InfoKey = DefaultInfoKey
	}
	return c
}

// Pending is a record tagged with its input index and, once a worker has
// seen it, its classification.
type Pending struct {
	Index  int
	Record *vcf.Record
	Result classify.Result
}

// Stats summarises a run.
type Stats struct {
	Records   int
	ByReason  map[classify.Reason]int
	ByLabel   map[string]int
	Annotated int
}

func newStats() Stats {
	return Stats{ByReason: map[classify.Reason]int{}, ByLabel: map[string]int{}}
}

func (s *Stats) add(p Pending) {
	s.Records++
	s.ByReason[p.Result.Reason]++
	if p.Result.Reason == classify.Annotated {
		s.Annotated++
		s.ByLabel[p.Result.Label]++
	}
}

// Run reads every record from src, classifies it on cfg.Threads workers,
// sets the label on annotated records and writes all records to sink in
// input order. It returns the first error encountered (source, classifier,
// sink or context cancellation). In the default mode nothing reaches the
// sink unless every record was classified.
func Run(ctx context.Context, cfg Config, src Source, ann Annotator, sink Sink) (Stats, error) {
	cfg = cfg.withDefaults()
	stats := newStats()

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan Pending, cfg.Threads*2)
	results := make(chan Pending, cfg.Threads*2)

	var window *semaphore.Weighted
	if cfg.Streaming {
		window = semaphore.NewWeighted(int64(cfg.Window))
	}

	// Producer
	g.Go(func() error {
		defer close(jobs)
		for {
			if window != nil {
				if err := window.Acquire(gctx, 1); err != nil {
					return err
				}
			}
			i, rec, err := src.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case jobs <- Pending{Index: i, Record: rec}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case p, ok := <-jobs:
					if !ok {
						return nil
					}
					res, err := ann.Classify(p.Record.Alleles())
					if err != nil {
						return fmt.Errorf("record %d: %w", p.Index, err)
					}
					if res.Reason == classify.Annotated {
						p.Record.SetInfo(cfg.InfoKey, res.Label)
					}
					p.Result = res
					select {
					case results <- p:
					case <-gctx.Done():
						return gctx.Err()
					}
				}
			}
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	emit := func(p Pending) error {
		stats.add(p)
		if cfg.Observe != nil {
			cfg.Observe(p)
		}
		return sink.Write(p.Record)
	}

	// Collector
	var done []Pending
	g.Go(func() error {
		if !cfg.Streaming {
			for p := range results {
				done = append(done, p)
			}
			return nil
		}
		ro := NewReorderer(1)
		for p := range results {
			err := ro.Push(p, func(q Pending) error {
				window.Release(1)
				return emit(q)
			})
			if err != nil {
				return err
			}
		}
		if gctx.Err() != nil {
			return gctx.Err()
		}
		return ro.Flush()
	})

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		return stats, err
	}
	if ctx.Err() != nil {
		return stats, ctx.Err()
	}

	if !cfg.Streaming {
		SortPending(done)
		for _, p := range done {
			if err := emit(p); err != nil {
				return stats, err
			}
		}
	}
	return stats, nil
}
