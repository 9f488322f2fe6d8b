// Package metrics exposes prometheus metrics for lookups and reloads.
//
// A nil *Metrics is valid and records nothing, so callers can pass nil when
// metrics are disabled.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maksimkurb/warninglists/src/internal/warninglist"
)

const namespace = "warninglists"

type Metrics struct {
	registry *prometheus.Registry

	lookups        *prometheus.CounterVec
	matches        *prometheus.CounterVec
	lookupDuration prometheus.Histogram
	lists          prometheus.Gauge
	entries        *prometheus.GaugeVec
	skipped        *prometheus.GaugeVec
	reloads        *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookups_total",
				Help:      "Total lookups by result.",
			},
			[]string{"result"},
		),
		matches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "matches_total",
				Help:      "Total lookups that matched a list.",
			},
			[]string{"list"},
		),
		lookupDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "lookup_duration_seconds",
				Help:      "Time spent matching a value against the selected lists.",
				Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
			},
		),
		lists: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "lists",
				Help:      "Number of loaded warning lists.",
			},
		),
		entries: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "list_entries",
				Help:      "Compiled entries per list.",
			},
			[]string{"list", "kind"},
		),
		skipped: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "list_skipped_entries",
				Help:      "Entries skipped while compiling a list.",
			},
			[]string{"list"},
		),
		reloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reloads_total",
				Help:      "Total collection reloads by result.",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		m.lookups, m.matches, m.lookupDuration,
		m.lists, m.entries, m.skipped, m.reloads,
	)
	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveLookup(matches []string, took time.Duration) {
	if m == nil {
		return
	}
	result := "miss"
	if len(matches) > 0 {
		result = "hit"
	}
	m.lookups.WithLabelValues(result).Inc()
	for _, name := range matches {
		m.matches.WithLabelValues(name).Inc()
	}
	m.lookupDuration.Observe(took.Seconds())
}

// ObserveCollection replaces the per-list gauges with the state of c.
func (m *Metrics) ObserveCollection(c *warninglist.Collection) {
	if m == nil || c == nil {
		return
	}
	m.entries.Reset()
	m.skipped.Reset()
	m.lists.Set(float64(c.Len()))
	for _, name := range c.ListNames() {
		stats, err := c.Stats(name)
		if err != nil {
			continue
		}
		m.entries.WithLabelValues(name, string(stats.Kind)).Set(float64(stats.Compiled))
		m.skipped.WithLabelValues(name).Set(float64(stats.Skipped))
	}
}

func (m *Metrics) ObserveReload(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.reloads.WithLabelValues("failure").Inc()
		return
	}
	m.reloads.WithLabelValues("success").Inc()
}
