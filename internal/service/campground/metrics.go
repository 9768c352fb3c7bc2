package campground

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records mutation outcomes. A nil *Metrics records nothing.
type Metrics struct {
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the campground mutation metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yelpcamp",
			Subsystem: "campground",
			Name:      "mutation_failures_total",
			Help:      "Campground mutations that ended in the failed state, by stage and kind.",
		}, []string{"op", "stage", "kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "yelpcamp",
			Subsystem: "campground",
			Name:      "mutation_duration_seconds",
			Help:      "Wall time of campground mutations, by outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "outcome"}),
	}
	reg.MustRegister(m.failures, m.duration)
	return m
}

func (m *Metrics) failed(op string, stage Stage, kind string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(op, string(stage), kind).Inc()
}

func (m *Metrics) observe(op, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(op, outcome).Observe(d.Seconds())
}
