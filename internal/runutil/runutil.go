// internal/runutil/runutil.go
package runutil

import (
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"sawshark/internal/logging"
)

// EffectiveThreads returns the worker count: requested if > 0, otherwise
// the number of CPUs (at least 1).
func EffectiveThreads(requested int) int {
	if requested > 0 {
		return requested
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// ResolveWindow decides the streaming window, returns (window, warnings).
// Rules:
//   - without --stream the window is unused; a non-zero value warns
//   - window <= 0 selects threads*perThread
func ResolveWindow(streaming bool, window, threads, perThread int) (int, []string) {
	if !streaming {
		if window != 0 {
			return 0, []string{"warning: --window has no effect without --stream; ignoring"}
		}
		return 0, nil
	}
	if window <= 0 {
		return threads * perThread, nil
	}
	return window, nil
}

// ProgressInterval is how often Progress logs at most.
const ProgressInterval = 10 * time.Second

// Progress logs a throttled running count of written records.
type Progress struct {
	log       *logging.Logger
	every     rate.Sometimes
	start     time.Time
	records   atomic.Int64
	annotated atomic.Int64
}

func NewProgress(log *logging.Logger, interval time.Duration) *Progress {
	if interval <= 0 {
		interval = ProgressInterval
	}
	return &Progress{log: log, every: rate.Sometimes{Interval: interval}, start: time.Now()}
}

// Add records one written record and logs if the interval has elapsed.
// The first call always logs.
func (p *Progress) Add(annotated bool) {
	n := p.records.Add(1)
	if annotated {
		p.annotated.Add(1)
	}
	p.every.Do(func() {
		p.log.Info("progress",
			"records", n,
			"annotated", p.annotated.Load(),
			"elapsed", time.Since(p.start).Round(time.Second))
	})
}
