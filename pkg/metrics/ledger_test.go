package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLedgerMetrics(reg)

	m.ObserveWithdrawal("created", 10*time.Millisecond)
	m.ObserveWithdrawal("created", 10*time.Millisecond)
	m.ObserveWithdrawal("", time.Millisecond)
	m.IncDecision("approve", "ok")
	m.IncPurchase("duplicate")
	m.IncConflict()

	mfs, err := reg.Gather()
	require.NoError(t, err)

	got, err := fetchCounterValue(mfs, "ledger_withdrawal_requests_total", "outcome", "created")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = fetchCounterValue(mfs, "ledger_withdrawal_requests_total", "outcome", "unknown")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = fetchCounterValue(mfs, "ledger_withdrawal_decisions_total", "decision", "approve")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = fetchCounterValue(mfs, "ledger_purchases_total", "result", "duplicate")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	mf := findMetricFamily(mfs, "ledger_withdrawal_version_conflicts_total")
	require.NotNil(t, mf)
	assert.Equal(t, 1.0, mf.GetMetric()[0].GetCounter().GetValue())
}

func TestLedgerMetricsNilSafe(t *testing.T) {
	var m *LedgerMetrics
	assert.NotPanics(t, func() {
		m.ObserveWithdrawal("created", time.Second)
		m.IncDecision("reject", "ok")
		m.IncPurchase("recorded")
		m.IncConflict()
	})

	unregistered := NewLedgerMetrics(nil)
	assert.NotPanics(t, func() { unregistered.IncConflict() })
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		for _, l := range metric.GetLabel() {
			if l.GetName() == label && l.GetValue() == value {
				return metric.GetCounter().GetValue(), nil
			}
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}
