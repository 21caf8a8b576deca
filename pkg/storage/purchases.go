package storage

import (
	"context"

	"github.com/chris/referral-ledger/pkg/models"
)

// PurchaseRecordStore holds commission-eligible purchases. It is append-only.
type PurchaseRecordStore interface {
	// CreatePurchase persists a new purchase record. It returns ErrAlreadyExists when a record
	// for the same order id is already present.
	CreatePurchase(ctx context.Context, purchase *models.PurchaseRecord) error

	// ListPurchasesByReferralCode retrieves all purchase records attributed to a referral code.
	ListPurchasesByReferralCode(ctx context.Context, referralCode string) ([]models.PurchaseRecord, error)
}
