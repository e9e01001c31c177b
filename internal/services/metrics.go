package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis outcomes recorded by the analyses counter.
const (
	OutcomeOK       = "ok"
	OutcomePartial  = "partial"
	OutcomeDegraded = "degraded"
	OutcomeSkipped  = "skipped"
)

// Metrics holds the Prometheus collectors for the journal service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	EntriesCreated  prometheus.Counter
	EntriesDeleted  prometheus.Counter
	Analyses        *prometheus.CounterVec
	AnalysisLatency prometheus.Histogram
}

// NewMetrics registers the collectors on reg. The stored-entries gauge reads
// straight from store at scrape time.
func NewMetrics(reg prometheus.Registerer, store *EntryStore) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		EntriesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "journal_entries_created_total",
			Help: "Total number of journal entries created",
		}),
		EntriesDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "journal_entries_deleted_total",
			Help: "Total number of journal entries deleted",
		}),
		Analyses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "journal_mood_analyses_total",
			Help: "Mood analyses by outcome",
		}, []string{"outcome"}), // ok, partial, degraded, skipped
		AnalysisLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "journal_mood_analysis_duration_seconds",
			Help:    "Latency of calls to the text generation model",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}),
	}

	if store != nil {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "journal_entries_stored",
			Help: "Number of journal entries currently held in memory",
		}, func() float64 {
			return float64(store.Len())
		})
	}

	return m
}

func (m *Metrics) RecordAnalysis(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Analyses.WithLabelValues(outcome).Inc()
	if outcome != OutcomeSkipped {
		m.AnalysisLatency.Observe(elapsed.Seconds())
	}
}

func (m *Metrics) RecordEntryCreated() {
	if m == nil {
		return
	}
	m.EntriesCreated.Inc()
}

func (m *Metrics) RecordEntryDeleted() {
	if m == nil {
		return
	}
	m.EntriesDeleted.Inc()
}
