package storage

import (
	"context"
	"time"

	"github.com/chris/referral-ledger/pkg/models"
)

// RejectionPolicy decides what happens to a withdrawal request when it is rejected.
type RejectionPolicy string

const (
	// RejectDelete removes the request entirely.
	RejectDelete RejectionPolicy = "delete"
	// RejectArchive keeps the request with status rejected for audit.
	RejectArchive RejectionPolicy = "archive"
)

// IsValid reports whether p is a known policy.
func (p RejectionPolicy) IsValid() bool {
	return p == RejectDelete || p == RejectArchive
}

// WithdrawalReader defines read access to withdrawal requests.
type WithdrawalReader interface {
	// GetWithdrawal retrieves a withdrawal request by id. It returns ErrNotFound if absent.
	GetWithdrawal(ctx context.Context, id string) (*models.WithdrawalRequest, error)

	// ListWithdrawalsByReferralCode retrieves every stored withdrawal for a referral code.
	// Reads must observe all previously committed withdrawals for that code.
	ListWithdrawalsByReferralCode(ctx context.Context, referralCode string) ([]models.WithdrawalRequest, error)

	// ListWithdrawals retrieves all withdrawal requests.
	ListWithdrawals(ctx context.Context) ([]models.WithdrawalRequest, error)

	// ListPendingWithdrawalsOlderThan retrieves pending requests created before the cutoff.
	ListPendingWithdrawalsOlderThan(ctx context.Context, cutoff time.Time) ([]models.WithdrawalRequest, error)
}

// WithdrawalManager defines the state-changing withdrawal operations.
type WithdrawalManager interface {
	// GetAccount returns the per-code concurrency token. A code that never withdrew has version 0.
	GetAccount(ctx context.Context, referralCode string) (*models.Account, error)

	// CreateWithdrawal atomically bumps the account version from expectedVersion and stores the
	// request. It returns ErrVersionConflict if another writer committed first.
	CreateWithdrawal(ctx context.Context, w *models.WithdrawalRequest, expectedVersion int64) error

	// MarkWithdrawalPaid transitions a pending request to paid. It returns ErrNotPending if the
	// request is no longer pending and ErrNotFound if it does not exist.
	MarkWithdrawalPaid(ctx context.Context, w *models.WithdrawalRequest, paidAt time.Time) (*models.WithdrawalRequest, error)

	// RejectWithdrawal applies the store's rejection policy to a pending request.
	RejectWithdrawal(ctx context.Context, w *models.WithdrawalRequest, rejectedAt time.Time) error

	// RejectionPolicy reports how rejections are persisted.
	RejectionPolicy() RejectionPolicy
}

// WithdrawalRequestStore combines the reader and manager interfaces.
type WithdrawalRequestStore interface {
	WithdrawalReader
	WithdrawalManager
}
