package ledger

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/chris/referral-ledger/pkg/models"
	"github.com/chris/referral-ledger/pkg/storage"
)

const anonymousBuyer = "Anonymous"

// PurchaseInput describes an approved order.
type PurchaseInput struct {
	OrderID      string
	ReferralCode string
	Buyer        string
	Amount       models.Money
	OccurredAt   time.Time
}

// RecordApprovedPurchase stores a purchase record for an approved order. Orders without a
// referral code and orders already recorded are no-ops reported with created=false.
func (l *Ledger) RecordApprovedPurchase(ctx context.Context, in PurchaseInput) (*models.PurchaseRecord, bool, error) {
	code := strings.TrimSpace(in.ReferralCode)
	if code == "" {
		l.Metrics.IncPurchase("unattributed")
		return nil, false, nil
	}
	if strings.TrimSpace(in.OrderID) == "" {
		return nil, false, Validation("order id is required")
	}
	if in.Amount.IsNegative() {
		return nil, false, Validation("purchase amount must not be negative")
	}

	now := l.Now()
	record := &models.PurchaseRecord{
		OrderID:      in.OrderID,
		ReferralCode: code,
		Buyer:        strings.TrimSpace(in.Buyer),
		Amount:       in.Amount,
		OccurredAt:   in.OccurredAt,
		CreatedAt:    now,
	}
	if record.Buyer == "" {
		record.Buyer = anonymousBuyer
	}
	if record.OccurredAt.IsZero() {
		record.OccurredAt = now
	}

	if err := l.Store.CreatePurchase(ctx, record); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			l.Metrics.IncPurchase("duplicate")
			slog.Info("purchase already recorded", "order_id", record.OrderID)
			return nil, false, nil
		}
		if errors.Is(err, models.ErrInvalidRecord) {
			return nil, false, Validation("%v", err)
		}
		return nil, false, Storage("create purchase", err)
	}

	l.Metrics.IncPurchase("recorded")
	slog.Info("purchase recorded", "order_id", record.OrderID, "referral_code", record.ReferralCode, "amount", record.Amount.StringFixed(2))
	return record, true, nil
}
