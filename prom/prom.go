// Package prom exports ranking and loading metrics to Prometheus.
package prom

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/hupe1980/vecrank"
)

var _ vecrank.MetricsCollector = (*Collector)(nil)

// Collector implements vecrank.MetricsCollector with Prometheus metrics.
type Collector struct {
	ranks       *prometheus.CounterVec
	rankLatency *prometheus.HistogramVec
	scored      prometheus.Counter
	loads       *prometheus.CounterVec
	loadLatency prometheus.Histogram
	loaded      prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		ranks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vecrank_rank_total",
			Help: "Total ranking calls",
		}, []string{"metric", "status"}),
		rankLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vecrank_rank_duration_seconds",
			Help:    "Latency of ranking calls",
			Buckets: prometheus.DefBuckets,
		}, []string{"metric"}),
		scored: f.NewCounter(prometheus.CounterOpts{
			Name: "vecrank_scored_entries_total",
			Help: "Total entries scored against a query",
		}),
		loads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vecrank_load_total",
			Help: "Total dataset loads",
		}, []string{"status"}),
		loadLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "vecrank_load_duration_seconds",
			Help:    "Latency of dataset loads",
			Buckets: prometheus.DefBuckets,
		}),
		loaded: f.NewCounter(prometheus.CounterOpts{
			Name: "vecrank_loaded_entries_total",
			Help: "Total entries read by successful loads",
		}),
	}
}

// RecordRank implements vecrank.MetricsCollector.
func (c *Collector) RecordRank(metric string, _, scored int, d time.Duration, err error) {
	c.ranks.WithLabelValues(metric, status(err)).Inc()
	c.rankLatency.WithLabelValues(metric).Observe(d.Seconds())
	c.scored.Add(float64(scored))
}

// RecordLoad implements vecrank.MetricsCollector.
func (c *Collector) RecordLoad(entries int, d time.Duration, err error) {
	c.loads.WithLabelValues(status(err)).Inc()
	c.loadLatency.Observe(d.Seconds())
	if err == nil {
		c.loaded.Add(float64(entries))
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// WriteText gathers g and writes it in the Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
