package telemetry_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/jaredlewiswechs/newtonfield/law"
	"github.com/jaredlewiswechs/newtonfield/telemetry"
)

func TestObserveVerifyIncrementsCounterByVerdict(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)

	m.ObserveVerify(law.Commit(), 4)
	m.ObserveVerify(law.Reject(law.Witness{LawIndex: 0}), 10)

	families, err := reg.Gather()
	require.NoError(t, err)

	var counter *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "newtonfield_verify_total" {
			counter = f
		}
	}
	require.NotNil(t, counter)
	require.Len(t, counter.GetMetric(), 2)
}

func TestObserveLedgerAppendIncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)

	m.ObserveLedgerAppend(law.Commit())

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "newtonfield_ledger_entries_total" {
			found = true
			require.Len(t, f.GetMetric(), 1)
		}
	}
	require.True(t, found)
}

func TestNilMetricsIsANoop(t *testing.T) {
	var m *telemetry.Metrics
	require.NotPanics(t, func() {
		m.ObserveVerify(law.Commit(), 1)
		m.ObserveLedgerAppend(law.Commit())
	})
}
