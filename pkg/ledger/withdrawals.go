package ledger

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/chris/referral-ledger/pkg/events"
	"github.com/chris/referral-ledger/pkg/models"
	"github.com/chris/referral-ledger/pkg/storage"
	"github.com/google/uuid"
)

// WithdrawalInput is a partner's payout request.
type WithdrawalInput struct {
	ReferralCode  string
	PaymentMethod models.PaymentMethod
	AccountNumber string
	Amount        models.Money
}

// Decision is an administrator's verdict on a pending withdrawal.
type Decision string

const (
	Approve Decision = "approve"
	Reject  Decision = "reject"
)

// BulkResult reports which requests a bulk rejection affected.
type BulkResult struct {
	Rejected []string
	Skipped  []string
}

func (in WithdrawalInput) validate() error {
	if strings.TrimSpace(in.ReferralCode) == "" {
		return Validation("referral code is required")
	}
	if in.PaymentMethod == "" {
		return Validation("payment method is required")
	}
	if !in.PaymentMethod.IsValid() {
		return Validation("unsupported payment method %q", in.PaymentMethod)
	}
	if strings.TrimSpace(in.AccountNumber) == "" {
		return Validation("account number is required")
	}
	if !in.Amount.IsPositive() {
		return Validation("amount must be greater than zero")
	}
	if !in.Amount.HasValidScale() {
		return Validation("amount must have at most %d decimal places", models.MoneyScale)
	}
	return nil
}

// RequestWithdrawal validates the request against the partner's available balance and stores
// it as pending. The balance check and the insert commit together against the code's account
// version; a lost race re-reads and re-checks up to MaxRetries times.
func (l *Ledger) RequestWithdrawal(ctx context.Context, in WithdrawalInput) (*models.WithdrawalRequest, error) {
	start := time.Now()
	w, err := l.requestWithdrawal(ctx, in)
	l.Metrics.ObserveWithdrawal(outcome(err), time.Since(start))
	return w, err
}

func (l *Ledger) requestWithdrawal(ctx context.Context, in WithdrawalInput) (*models.WithdrawalRequest, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := l.authorize(ctx, in.ReferralCode); err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		account, err := l.Store.GetAccount(ctx, in.ReferralCode)
		if err != nil {
			return nil, Storage("get account", err)
		}

		available, err := l.AvailableBalance(ctx, in.ReferralCode)
		if err != nil {
			return nil, err
		}
		if in.Amount.GreaterThan(available.Decimal) {
			return nil, InsufficientBalance("requested %s exceeds available balance %s", in.Amount.StringFixed(2), available.StringFixed(2))
		}

		now := l.Now()
		w := &models.WithdrawalRequest{
			Id:            uuid.NewString(),
			ReferralCode:  in.ReferralCode,
			PaymentMethod: in.PaymentMethod,
			AccountNumber: strings.TrimSpace(in.AccountNumber),
			Amount:        in.Amount,
			Status:        models.PENDING,
			RequestedAt:   now,
			UpdatedAt:     now,
		}

		err = l.Store.CreateWithdrawal(ctx, w, account.Version)
		if err == nil {
			slog.Info("withdrawal requested", "id", w.Id, "referral_code", w.ReferralCode, "amount", w.Amount.StringFixed(2))
			l.publish(ctx, events.WithdrawalRequested, w)
			return w, nil
		}
		if !errors.Is(err, storage.ErrVersionConflict) {
			return nil, Storage("create withdrawal", err)
		}

		l.Metrics.IncConflict()
		if attempt >= l.MaxRetries {
			return nil, Storage("create withdrawal", err)
		}
		slog.Warn("withdrawal lost version race, retrying", "referral_code", in.ReferralCode, "attempt", attempt+1)
	}
}

// DecideWithdrawal applies an administrator's decision to a pending request.
func (l *Ledger) DecideWithdrawal(ctx context.Context, id string, decision Decision) (*models.WithdrawalRequest, error) {
	w, err := l.decideWithdrawal(ctx, id, decision)
	l.Metrics.IncDecision(string(decision), outcome(err))
	return w, err
}

func (l *Ledger) decideWithdrawal(ctx context.Context, id string, decision Decision) (*models.WithdrawalRequest, error) {
	if id == "" {
		return nil, Validation("withdrawal request id is required")
	}
	if decision != Approve && decision != Reject {
		return nil, Validation("unknown decision %q", decision)
	}

	current, err := l.Store.GetWithdrawal(ctx, id)
	if err != nil {
		return nil, transitionError("get withdrawal", err)
	}
	if err := canTransition(current.Status, target(decision)); err != nil {
		return nil, err
	}

	now := l.Now()
	if decision == Approve {
		paid, err := l.Store.MarkWithdrawalPaid(ctx, current, now)
		if err != nil {
			return nil, transitionError("mark withdrawal paid", err)
		}
		slog.Info("withdrawal paid", "id", paid.Id, "referral_code", paid.ReferralCode)
		l.publish(ctx, events.WithdrawalPaid, paid)
		return paid, nil
	}

	if err := l.Store.RejectWithdrawal(ctx, current, now); err != nil {
		return nil, transitionError("reject withdrawal", err)
	}
	rejected := *current
	rejected.Status = models.REJECTED
	rejected.RejectedAt = &now
	rejected.UpdatedAt = now
	slog.Info("withdrawal rejected", "id", rejected.Id, "referral_code", rejected.ReferralCode, "policy", l.Store.RejectionPolicy())
	l.publish(ctx, events.WithdrawalRejected, &rejected)
	return &rejected, nil
}

// BulkReject rejects every listed request that is still pending. Unknown and already
// decided requests are skipped.
func (l *Ledger) BulkReject(ctx context.Context, ids []string) (*BulkResult, error) {
	if len(ids) == 0 {
		return nil, Validation("no withdrawal request ids provided")
	}

	result := &BulkResult{Rejected: []string{}, Skipped: []string{}}
	for _, id := range ids {
		_, err := l.DecideWithdrawal(ctx, id, Reject)
		switch {
		case err == nil:
			result.Rejected = append(result.Rejected, id)
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidState), errors.Is(err, ErrValidation):
			result.Skipped = append(result.Skipped, id)
		default:
			return nil, err
		}
	}

	slog.Info("bulk rejected withdrawals", "rejected", len(result.Rejected), "skipped", len(result.Skipped))
	return result, nil
}

func (l *Ledger) publish(ctx context.Context, t events.Type, w *models.WithdrawalRequest) {
	if err := l.Publisher.Publish(ctx, events.NewWithdrawalEvent(t, w, l.Now())); err != nil {
		slog.Error("failed to publish ledger event", "type", t, "id", w.Id, "error", err)
	}
}

func transitionError(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return NotFound("withdrawal request not found")
	case errors.Is(err, storage.ErrNotPending):
		return InvalidState("withdrawal request is not pending")
	default:
		return Storage(op, err)
	}
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return string(KindOf(err))
}
