package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jaredlewiswechs/newtonfield/law"
)

// Metrics exposes prometheus collectors for verification and ledger
// activity, grounded on luxfi-consensus's instrumentation of its
// consensus engine. A nil *Metrics is a documented no-op everywhere it is
// accepted (engine.WithMetrics, ledger.WithMetrics).
type Metrics struct {
	verifyTotal    *prometheus.CounterVec
	subdivisionMax prometheus.Histogram
	ledgerTotal    *prometheus.CounterVec
}

// NewMetrics registers newtonfield's collectors against reg and returns
// the Metrics handle. Registering the same Metrics against a Registerer
// twice (e.g. in two test cases) will panic, the same as any other
// prometheus collector — callers should use a fresh prometheus.Registry
// per test.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		verifyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newtonfield_verify_total",
			Help: "Total engine.Verify calls by verdict.",
		}, []string{"verdict"}),
		subdivisionMax: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "newtonfield_verify_subdivision_depth",
			Help:    "Maximum subdivision depth reached per engine.Verify call.",
			Buckets: prometheus.LinearBuckets(0, 2, 20),
		}),
		ledgerTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "newtonfield_ledger_entries_total",
			Help: "Total ledger entries appended by verdict.",
		}, []string{"verdict"}),
	}
	reg.MustRegister(m.verifyTotal, m.subdivisionMax, m.ledgerTotal)
	return m
}

// ObserveVerify records one engine.Verify outcome.
func (m *Metrics) ObserveVerify(verdict law.Verdict, maxDepthReached int) {
	if m == nil {
		return
	}
	m.verifyTotal.WithLabelValues(verdict.Kind.String()).Inc()
	m.subdivisionMax.Observe(float64(maxDepthReached))
}

// ObserveLedgerAppend records one ledger append outcome.
func (m *Metrics) ObserveLedgerAppend(verdict law.Verdict) {
	if m == nil {
		return
	}
	m.ledgerTotal.WithLabelValues(verdict.Kind.String()).Inc()
}

