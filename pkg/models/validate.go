package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord is returned when a record fails validation at the store boundary.
var ErrInvalidRecord = errors.New("invalid record")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRecord, fmt.Sprintf(format, args...))
}

// Validate checks the required fields of a purchase record.
func (p *PurchaseRecord) Validate() error {
	if strings.TrimSpace(p.OrderID) == "" {
		return invalid("purchase order id is required")
	}
	if strings.TrimSpace(p.ReferralCode) == "" {
		return invalid("purchase referral code is required")
	}
	if p.Amount.IsNegative() {
		return invalid("purchase amount must not be negative")
	}
	if p.OccurredAt.IsZero() {
		return invalid("purchase occurrence time is required")
	}
	return nil
}

// Validate checks the required fields and status/timestamp consistency of a withdrawal.
func (w *WithdrawalRequest) Validate() error {
	if strings.TrimSpace(w.Id) == "" {
		return invalid("withdrawal id is required")
	}
	if strings.TrimSpace(w.ReferralCode) == "" {
		return invalid("withdrawal referral code is required")
	}
	if !w.PaymentMethod.IsValid() {
		return invalid("unsupported payment method %q", w.PaymentMethod)
	}
	if strings.TrimSpace(w.AccountNumber) == "" {
		return invalid("withdrawal account number is required")
	}
	if !w.Amount.IsPositive() {
		return invalid("withdrawal amount must be positive")
	}
	switch w.Status {
	case PENDING:
		if w.PaidAt != nil {
			return invalid("pending withdrawal cannot carry a paid timestamp")
		}
	case PAID:
		if w.PaidAt == nil {
			return invalid("paid withdrawal requires a paid timestamp")
		}
	case REJECTED:
		if w.PaidAt != nil {
			return invalid("rejected withdrawal cannot carry a paid timestamp")
		}
	default:
		return invalid("unknown withdrawal status %q", w.Status)
	}
	return nil
}

// Validate checks the required fields of a partner.
func (p *Partner) Validate() error {
	if strings.TrimSpace(p.ReferralCode) == "" {
		return invalid("partner referral code is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return invalid("partner name is required")
	}
	if p.PasswordHash == "" {
		return invalid("partner credential is required")
	}
	switch p.Status {
	case PartnerPending, PartnerApproved, PartnerRejected:
	default:
		return invalid("unknown partner status %q", p.Status)
	}
	return nil
}
