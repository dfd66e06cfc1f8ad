package precompile

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsPrefix = "precompile_oracle_"

// Metrics are the dispatch metrics.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the dispatch metrics and registers them with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricsPrefix + "calls",
				Help: "Number of precompile invocations.",
			},
			[]string{"operation", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricsPrefix + "call_duration_seconds",
				Help:    "Precompile invocation latency.",
				Buckets: prometheus.ExponentialBuckets(0.000_01, 4, 10),
			},
			[]string{"operation"},
		),
	}
	reg.MustRegister(m.calls, m.duration)
	return m
}

func (m *Metrics) observe(op Operation, start time.Time, err error) {
	if m == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = "error"
		if class := ErrorClass(err); class != nil {
			result = class.Error()
		}
	}
	m.calls.WithLabelValues(op.String(), result).Inc()
	m.duration.WithLabelValues(op.String()).Observe(time.Since(start).Seconds())
}
