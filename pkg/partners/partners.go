// Package partners is the partner directory: applicant registration, administrative
// review, and the approved-partner lookups the ledger relies on.
package partners

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/chris/referral-ledger/pkg/ledger"
	"github.com/chris/referral-ledger/pkg/models"
	"github.com/chris/referral-ledger/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Application is a request to join the referral program.
type Application struct {
	Name         string
	Email        string
	Mobile       string
	ReferralCode string
	ProfileLink  string
	Password     string
}

// BulkResult reports which codes a bulk rejection removed and which it left untouched.
type BulkResult struct {
	Rejected []string
	Skipped  []string
}

// Service defines the partner directory operations exposed over HTTP.
type Service interface {
	ledger.PartnerDirectory
	Apply(ctx context.Context, app Application) (*models.Partner, error)
	Login(ctx context.Context, referralCode, password string) (*models.Partner, error)
	ListApplicants(ctx context.Context) ([]models.Partner, error)
	Approve(ctx context.Context, referralCode string) (*models.Partner, error)
	Reject(ctx context.Context, referralCode string) error
	BulkReject(ctx context.Context, referralCodes []string) (*BulkResult, error)
	ApprovedCodes(ctx context.Context) ([]string, error)
}

// Directory implements Service over a PartnerStore.
type Directory struct {
	Store  storage.PartnerStore
	Hasher Hasher
	Now    func() time.Time
}

// NewDirectory creates a new Directory.
func NewDirectory(store storage.PartnerStore, hasher Hasher) *Directory {
	return &Directory{
		Store:  store,
		Hasher: hasher,
		Now:    func() time.Time { return time.Now().UTC() },
	}
}

// Make sure we conform to the interface
var _ Service = (*Directory)(nil)

// ResolveApprovedPartner returns the partner only when it exists and is approved. Unknown
// and unapproved codes yield nil without an error.
func (d *Directory) ResolveApprovedPartner(ctx context.Context, referralCode string) (*models.Partner, error) {
	p, err := d.Store.GetPartner(ctx, referralCode)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, ledger.Storage("get partner", err)
	}
	if p.Status != models.PartnerApproved {
		return nil, nil
	}
	return p, nil
}

// VerifyCredential reports whether secret matches the approved partner's password.
func (d *Directory) VerifyCredential(ctx context.Context, referralCode, secret string) (bool, error) {
	p, err := d.ResolveApprovedPartner(ctx, referralCode)
	if err != nil || p == nil {
		return false, err
	}
	return d.matches(p, secret)
}

func (d *Directory) matches(p *models.Partner, secret string) (bool, error) {
	if err := d.Hasher.Compare(p.PasswordHash, secret); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, ledger.Storage("compare credential", err)
	}
	return true, nil
}

// Apply registers a pending applicant under a fresh referral id.
func (d *Directory) Apply(ctx context.Context, app Application) (*models.Partner, error) {
	app.ReferralCode = strings.TrimSpace(app.ReferralCode)
	if strings.TrimSpace(app.Name) == "" || app.ReferralCode == "" || strings.TrimSpace(app.ProfileLink) == "" || app.Password == "" {
		return nil, ledger.Validation("name, referral code, profile link and password are required")
	}

	hash, err := d.Hasher.Hash(app.Password)
	if err != nil {
		return nil, ledger.Validation("password cannot be used: %v", err)
	}

	now := d.Now()
	partner := &models.Partner{
		ReferralCode: app.ReferralCode,
		ReferralID:   uuid.NewString(),
		Name:         strings.TrimSpace(app.Name),
		Email:        app.Email,
		Mobile:       app.Mobile,
		ProfileLink:  app.ProfileLink,
		PasswordHash: hash,
		Status:       models.PartnerPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := d.Store.CreatePartner(ctx, partner); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ledger.InvalidState("referral code already in use")
		}
		return nil, ledger.Storage("create partner", err)
	}

	slog.Info("referral application received", "referral_code", partner.ReferralCode, "referral_id", partner.ReferralID)
	return partner, nil
}

// Login checks the credential of an approved partner and returns its profile.
func (d *Directory) Login(ctx context.Context, referralCode, password string) (*models.Partner, error) {
	if referralCode == "" || password == "" {
		return nil, ledger.Validation("referral code and password are required")
	}

	p, err := d.ResolveApprovedPartner(ctx, referralCode)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ledger.NotFound("referral code not found or not approved")
	}

	ok, err := d.matches(p, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ledger.Unauthorized("incorrect password")
	}
	return p, nil
}

// ListApplicants returns every partner, newest first.
func (d *Directory) ListApplicants(ctx context.Context) ([]models.Partner, error) {
	partners, err := d.Store.ListPartners(ctx)
	if err != nil {
		return nil, ledger.Storage("list partners", err)
	}
	return partners, nil
}

// Approve moves a pending applicant to approved.
func (d *Directory) Approve(ctx context.Context, referralCode string) (*models.Partner, error) {
	if referralCode == "" {
		return nil, ledger.Validation("referral code is required")
	}

	p, err := d.Store.ApprovePartner(ctx, referralCode, d.Now())
	if err != nil {
		return nil, d.decisionError("approve partner", err)
	}

	slog.Info("referral partner approved", "referral_code", referralCode)
	return p, nil
}

// Reject removes a pending applicant.
func (d *Directory) Reject(ctx context.Context, referralCode string) error {
	if referralCode == "" {
		return ledger.Validation("referral code is required")
	}

	if err := d.Store.DeletePendingPartner(ctx, referralCode); err != nil {
		return d.decisionError("reject partner", err)
	}

	slog.Info("referral application rejected", "referral_code", referralCode)
	return nil
}

// BulkReject removes each listed applicant that is still pending. Processed or unknown
// codes are reported as skipped.
func (d *Directory) BulkReject(ctx context.Context, referralCodes []string) (*BulkResult, error) {
	if len(referralCodes) == 0 {
		return nil, ledger.Validation("no referral codes provided")
	}

	result := &BulkResult{Rejected: []string{}, Skipped: []string{}}
	for _, code := range referralCodes {
		err := d.Store.DeletePendingPartner(ctx, code)
		switch {
		case err == nil:
			result.Rejected = append(result.Rejected, code)
		case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrPartnerNotPending):
			result.Skipped = append(result.Skipped, code)
		default:
			return nil, ledger.Storage("bulk reject partners", err)
		}
	}

	slog.Info("bulk rejected referral applications", "rejected", len(result.Rejected), "skipped", len(result.Skipped))
	return result, nil
}

// ApprovedCodes lists the referral codes customers may enter at checkout.
func (d *Directory) ApprovedCodes(ctx context.Context) ([]string, error) {
	approved, err := d.Store.ListPartnersByStatus(ctx, models.PartnerApproved)
	if err != nil {
		return nil, ledger.Storage("list approved partners", err)
	}

	codes := make([]string, len(approved))
	for i, p := range approved {
		codes[i] = p.ReferralCode
	}
	return codes, nil
}

func (d *Directory) decisionError(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ledger.NotFound("applicant not found")
	case errors.Is(err, storage.ErrPartnerNotPending):
		return ledger.InvalidState("applicant is not pending")
	default:
		return ledger.Storage(op, err)
	}
}
