package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// LedgerMetrics records outcomes of ledger operations.
type LedgerMetrics struct {
	withdrawals     *prometheus.CounterVec
	decisions       *prometheus.CounterVec
	purchases       *prometheus.CounterVec
	conflicts       prometheus.Counter
	requestDuration prometheus.Histogram
}

// NewLedgerMetrics registers the ledger metrics on the provided registerer.
// A nil registerer yields a collector whose methods do nothing.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	withdrawals := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_withdrawal_requests_total",
		Help: "Withdrawal requests by outcome.",
	}, []string{"outcome"})
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_withdrawal_decisions_total",
		Help: "Administrative withdrawal decisions by decision and outcome.",
	}, []string{"decision", "outcome"})
	purchases := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_purchases_total",
		Help: "Approved purchase notifications by result.",
	}, []string{"result"})
	conflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledger_withdrawal_version_conflicts_total",
		Help: "Withdrawal commits retried after losing a per-code version race.",
	})
	requestDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ledger_withdrawal_request_duration_seconds",
		Help:    "Duration of withdrawal request handling in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(withdrawals, decisions, purchases, conflicts, requestDuration)
	return &LedgerMetrics{
		withdrawals:     withdrawals,
		decisions:       decisions,
		purchases:       purchases,
		conflicts:       conflicts,
		requestDuration: requestDuration,
	}
}

// ObserveWithdrawal counts a withdrawal request outcome and its duration.
func (m *LedgerMetrics) ObserveWithdrawal(outcome string, duration time.Duration) {
	if m == nil || m.withdrawals == nil {
		return
	}
	m.withdrawals.WithLabelValues(normalizeLabel(outcome)).Inc()
	m.requestDuration.Observe(duration.Seconds())
}

// IncDecision counts an approve or reject decision.
func (m *LedgerMetrics) IncDecision(decision, outcome string) {
	if m == nil || m.decisions == nil {
		return
	}
	m.decisions.WithLabelValues(normalizeLabel(decision), normalizeLabel(outcome)).Inc()
}

// IncPurchase counts a purchase notification by result.
func (m *LedgerMetrics) IncPurchase(result string) {
	if m == nil || m.purchases == nil {
		return
	}
	m.purchases.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncConflict counts a lost compare-and-commit.
func (m *LedgerMetrics) IncConflict() {
	if m == nil || m.conflicts == nil {
		return
	}
	m.conflicts.Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
