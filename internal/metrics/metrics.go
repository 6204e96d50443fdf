// Package metrics records per-run classification counters.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"sawshark/internal/classify"
	"sawshark/internal/pipeline"
)

// Collector receives one observation per classified record.
type Collector interface {
	OnClassify(d time.Duration, res classify.Result, err error)
}

// Noop discards everything.
type Noop struct{}

func (Noop) OnClassify(time.Duration, classify.Result, error) {}

// Prometheus implements Collector on a private registry so repeated runs
// in one process do not collide.
type Prometheus struct {
	reg      *prometheus.Registry
	info     *prometheus.GaugeVec
	records  prometheus.Counter
	outcomes *prometheus.CounterVec
	labels   *prometheus.CounterVec
	errors   prometheus.Counter
	latency  prometheus.Histogram
}

// NewPrometheus builds the run's collectors. runID and version are
// exported once as labels of sawshark_run_info so a textfile can be
// matched to the log lines of the run that wrote it.
func NewPrometheus(runID, version string) *Prometheus {
	p := &Prometheus{
		reg: prometheus.NewRegistry(),
		info: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sawshark_run_info",
			Help: "Constant 1, labelled with the run identity",
		}, []string{"run_id", "version"}),
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sawshark_records_total",
			Help: "Records classified",
		}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sawshark_outcomes_total",
			Help: "Classification outcomes by reason",
		}, []string{"reason"}),
		labels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sawshark_annotations_total",
			Help: "Annotated records by library label",
		}, []string{"label"}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sawshark_classify_errors_total",
			Help: "Classifier failures",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sawshark_classify_duration_seconds",
			Help:    "Time spent classifying one record",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
	}
	p.reg.MustRegister(p.info, p.records, p.outcomes, p.labels, p.errors, p.latency)
	p.info.WithLabelValues(runID, version).Set(1)
	return p
}

// Registry exposes the underlying registry, e.g. for tests.
func (p *Prometheus) Registry() *prometheus.Registry { return p.reg }

func (p *Prometheus) OnClassify(d time.Duration, res classify.Result, err error) {
	p.latency.Observe(d.Seconds())
	if err != nil {
		p.errors.Inc()
		return
	}
	p.records.Inc()
	p.outcomes.WithLabelValues(res.Reason.String()).Inc()
	if res.Reason == classify.Annotated {
		p.labels.WithLabelValues(res.Label).Inc()
	}
}

// WriteTextfile writes the registry in the node_exporter textfile format.
// The file is replaced atomically.
func (p *Prometheus) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.reg)
}

// Instrument wraps an annotator so every call is timed and reported to c.
func Instrument(a pipeline.Annotator, c Collector) pipeline.Annotator {
	if c == nil {
		return a
	}
	return instrumented{a: a, c: c}
}

type instrumented struct {
	a pipeline.Annotator
	c Collector
}

func (i instrumented) Classify(alleles [][]byte) (classify.Result, error) {
	start := time.Now()
	res, err := i.a.Classify(alleles)
	i.c.OnClassify(time.Since(start), res, err)
	return res, err
}
