package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream sources
const (
	SourceCoins = "coins"
	SourceRates = "rates"
)

// Fetch and submission outcomes
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultCacheHit = "cache_hit"
	ResultInvalid  = "invalid"
	ResultNoCoin   = "no_coin"
	ResultAccepted = "accepted"
)

// PurchaseMetrics holds the counters exported on /metrics.
type PurchaseMetrics struct {
	// Upstream fetches by source and result
	UpstreamFetchTotal *prometheus.CounterVec
	// Upstream fetch latency by source
	UpstreamFetchDuration *prometheus.HistogramVec

	// Form recomputations by edited field
	ConversionsTotal *prometheus.CounterVec

	// Form submissions by outcome
	SubmissionsTotal *prometheus.CounterVec
}

// NewPurchaseMetrics registers the metrics on reg.
// A nil reg falls back to the default registerer.
func NewPurchaseMetrics(reg prometheus.Registerer) *PurchaseMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PurchaseMetrics{
		UpstreamFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_fetch_total",
				Help: "Number of coin list and exchange rate fetches",
			},
			[]string{"source", "result"},
		),
		UpstreamFetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_fetch_duration_seconds",
				Help:    "Latency of coin list and exchange rate fetches",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "form_conversions_total",
				Help: "Number of form recomputations",
			},
			[]string{"edited"},
		),
		SubmissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "form_submissions_total",
				Help: "Number of purchase form submissions",
			},
			[]string{"result"},
		),
	}
}

// ObserveFetch records one upstream fetch.
func (m *PurchaseMetrics) ObserveFetch(source, result string, started time.Time) {
	if m == nil {
		return
	}
	m.UpstreamFetchTotal.WithLabelValues(source, result).Inc()
	m.UpstreamFetchDuration.WithLabelValues(source).Observe(time.Since(started).Seconds())
}

// ObserveConversion records one recomputation.
func (m *PurchaseMetrics) ObserveConversion(edited string) {
	if m == nil {
		return
	}
	m.ConversionsTotal.WithLabelValues(edited).Inc()
}

// ObserveSubmission records one submission outcome.
func (m *PurchaseMetrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(result).Inc()
}
