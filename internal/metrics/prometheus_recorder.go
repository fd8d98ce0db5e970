package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg         *prom.Registry
	directories *prom.CounterVec
	runDuration prom.Histogram
	runOutcome  *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the scaffolding metrics on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		directories: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "outscaffold",
			Name:      "directories_total",
			Help:      "Declared directories processed, by result",
		}, []string{"result"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "outscaffold",
			Name:      "run_duration_seconds",
			Help:      "Duration of a scaffolding run",
			Buckets:   prom.DefBuckets,
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "outscaffold",
			Name:      "runs_total",
			Help:      "Scaffolding runs by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.directories, pr.runDuration, pr.runOutcome)
	return pr
}

func (p *PrometheusRecorder) IncDirectory(result DirectoryResult) {
	if p == nil || p.directories == nil {
		return
	}
	p.directories.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome RunOutcome) {
	if p == nil || p.runOutcome == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
}

// Registry exposes the underlying registry.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

// WriteTextfile writes all gathered metrics to filename in text exposition format.
// The file is written atomically.
func (p *PrometheusRecorder) WriteTextfile(filename string) error {
	return prom.WriteToTextfile(filename, p.reg)
}
