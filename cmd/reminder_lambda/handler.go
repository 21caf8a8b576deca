package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/referral-ledger/pkg/events"
	"github.com/chris/referral-ledger/pkg/ledger"
)

// Handler re-announces withdrawals that have waited too long for an administrator.
type Handler struct {
	Ledger     ledger.Service
	Publisher  events.Publisher
	StaleAfter time.Duration
	Now        func() time.Time
}

// Summary is returned to the scheduler for visibility in the invocation log.
type Summary struct {
	Stale     int `json:"stale"`
	Published int `json:"published"`
	Failed    int `json:"failed"`
}

// HandleRequest is triggered by an EventBridge Schedule.
func (h *Handler) HandleRequest(ctx context.Context) (Summary, error) {
	slog.Info("checking for stale pending withdrawals", "stale_after", h.StaleAfter.String())

	stale, err := h.Ledger.StalePendingWithdrawals(ctx, h.StaleAfter)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to list stale withdrawals: %w", err)
	}

	summary := Summary{Stale: len(stale)}
	if len(stale) == 0 {
		slog.Info("no stale withdrawals found")
		return summary, nil
	}

	now := h.Now()
	for i := range stale {
		w := &stale[i]
		if err := h.Publisher.Publish(ctx, events.NewWithdrawalEvent(events.WithdrawalStale, w, now)); err != nil {
			// Continue to the next withdrawal, don't let one failure stop the whole batch.
			slog.Error("failed to publish stale reminder", "withdrawal_id", w.Id, "error", err)
			summary.Failed++
			continue
		}
		slog.Info("stale reminder published", "withdrawal_id", w.Id, "referral_code", w.ReferralCode,
			"waiting", now.Sub(w.RequestedAt).Round(time.Minute).String())
		summary.Published++
	}

	slog.Info("stale withdrawal check finished", "stale", summary.Stale, "published", summary.Published, "failed", summary.Failed)
	return summary, nil
}
