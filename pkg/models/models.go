package models

import (
	"time"
)

// WithdrawalStatus defines the possible states of a withdrawal request.
type WithdrawalStatus string

const (
	PENDING  WithdrawalStatus = "pending"
	PAID     WithdrawalStatus = "paid"
	REJECTED WithdrawalStatus = "rejected"
)

// PaymentMethod is the payout channel a partner chose for a withdrawal.
type PaymentMethod string

const (
	Bkash        PaymentMethod = "Bkash"
	Nagad        PaymentMethod = "Nagad"
	Rocket       PaymentMethod = "Rocket"
	BankTransfer PaymentMethod = "Bank Transfer"
)

// IsValid reports whether m is one of the supported payout channels.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case Bkash, Nagad, Rocket, BankTransfer:
		return true
	}
	return false
}

// PartnerStatus is the approval state of a referral partner.
type PartnerStatus string

const (
	PartnerPending  PartnerStatus = "pending"
	PartnerApproved PartnerStatus = "approved"
	PartnerRejected PartnerStatus = "rejected"
)

// PurchaseRecord is one commission-eligible sale attributed to a referral code.
// It is keyed by the originating order so an order can only ever produce one record.
type PurchaseRecord struct {
	OrderID      string    `json:"order_id" dynamodbav:"order_id"`
	ReferralCode string    `json:"referral_code" dynamodbav:"referral_code"`
	Buyer        string    `json:"buyer" dynamodbav:"buyer"`
	Amount       Money     `json:"amount" dynamodbav:"amount"`
	OccurredAt   time.Time `json:"occurred_at" dynamodbav:"occurred_at"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at"`
}

// WithdrawalRequest represents a partner payout request.
type WithdrawalRequest struct {
	Id            string           `json:"id" dynamodbav:"id"`
	ReferralCode  string           `json:"referral_code" dynamodbav:"referral_code"`
	PaymentMethod PaymentMethod    `json:"payment_method" dynamodbav:"payment_method"`
	AccountNumber string           `json:"account_number" dynamodbav:"account_number"`
	Amount        Money            `json:"amount" dynamodbav:"amount"`
	Status        WithdrawalStatus `json:"status" dynamodbav:"status"`
	RequestedAt   time.Time        `json:"requested_at" dynamodbav:"requested_at"`
	PaidAt        *time.Time       `json:"paid_at,omitempty" dynamodbav:"paid_at,omitempty"`
	RejectedAt    *time.Time       `json:"rejected_at,omitempty" dynamodbav:"rejected_at,omitempty"`
	UpdatedAt     time.Time        `json:"updated_at" dynamodbav:"updated_at"`
}

// Partner is a referral program participant as held by the partner directory.
type Partner struct {
	ReferralCode string        `json:"referral_code" dynamodbav:"referral_code"`
	ReferralID   string        `json:"referral_id" dynamodbav:"referral_id"`
	Name         string        `json:"name" dynamodbav:"name"`
	Email        string        `json:"email" dynamodbav:"email"`
	Mobile       string        `json:"mobile" dynamodbav:"mobile"`
	ProfileLink  string        `json:"profile_link" dynamodbav:"profile_link"`
	PasswordHash string        `json:"-" dynamodbav:"password_hash"`
	Status       PartnerStatus `json:"status" dynamodbav:"status"`
	CreatedAt    time.Time     `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" dynamodbav:"updated_at"`
}

// Account is the per-referral-code concurrency token. Every withdrawal creation bumps
// Version so two requests racing on the same code cannot both commit against one balance.
type Account struct {
	ReferralCode string    `dynamodbav:"referral_code"`
	Version      int64     `dynamodbav:"version"`
	UpdatedAt    time.Time `dynamodbav:"updated_at"`
}
