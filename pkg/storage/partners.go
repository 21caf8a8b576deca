package storage

import (
	"context"
	"time"

	"github.com/chris/referral-ledger/pkg/models"
)

// PartnerStore defines the interface for managing referral partners.
type PartnerStore interface {
	// GetPartner retrieves a partner by referral code. It returns ErrNotFound if absent.
	GetPartner(ctx context.Context, referralCode string) (*models.Partner, error)

	// CreatePartner stores a new applicant. It returns ErrAlreadyExists if the code is taken.
	CreatePartner(ctx context.Context, partner *models.Partner) error

	// ListPartners retrieves all partners.
	ListPartners(ctx context.Context) ([]models.Partner, error)

	// ListPartnersByStatus retrieves partners in the given status.
	ListPartnersByStatus(ctx context.Context, status models.PartnerStatus) ([]models.Partner, error)

	// ApprovePartner transitions a pending applicant to approved. It returns ErrPartnerNotPending
	// if the applicant was already processed.
	ApprovePartner(ctx context.Context, referralCode string, at time.Time) (*models.Partner, error)

	// DeletePendingPartner removes an applicant that is still pending.
	DeletePendingPartner(ctx context.Context, referralCode string) error
}
