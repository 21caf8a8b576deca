// Package events publishes ledger lifecycle notifications for downstream consumers
// such as payout tooling and partner notifications.
package events

import (
	"context"
	"time"

	"github.com/chris/referral-ledger/pkg/models"
)

// Type names a ledger event.
type Type string

const (
	WithdrawalRequested Type = "withdrawal.requested"
	WithdrawalPaid      Type = "withdrawal.paid"
	WithdrawalRejected  Type = "withdrawal.rejected"
	WithdrawalStale     Type = "withdrawal.stale"
)

// Event is the message body sent for every withdrawal transition.
type Event struct {
	Type          Type                    `json:"type"`
	WithdrawalID  string                  `json:"withdrawal_id"`
	ReferralCode  string                  `json:"referral_code"`
	Amount        models.Money            `json:"amount"`
	PaymentMethod models.PaymentMethod    `json:"payment_method"`
	Status        models.WithdrawalStatus `json:"status"`
	OccurredAt    time.Time               `json:"occurred_at"`
}

// NewWithdrawalEvent builds an event describing w.
func NewWithdrawalEvent(t Type, w *models.WithdrawalRequest, at time.Time) Event {
	return Event{
		Type:          t,
		WithdrawalID:  w.Id,
		ReferralCode:  w.ReferralCode,
		Amount:        w.Amount,
		PaymentMethod: w.PaymentMethod,
		Status:        w.Status,
		OccurredAt:    at,
	}
}

// Publisher defines the interface for a component that emits ledger events.
type Publisher interface {
	// Publish sends the event. Delivery is at-least-once.
	Publish(ctx context.Context, event Event) error
}

// NoOpPublisher drops every event. It is used when no queue is configured.
type NoOpPublisher struct{}

var _ Publisher = NoOpPublisher{}

func (NoOpPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}

// OrderApproved is the message the order system sends when an order is approved for commission.
// Amount is nil when the message omits it.
type OrderApproved struct {
	OrderID      string        `json:"order_id"`
	ReferralCode string        `json:"referral_code"`
	Buyer        string        `json:"buyer"`
	Amount       *models.Money `json:"amount"`
	ApprovedAt   time.Time     `json:"approved_at"`
}
