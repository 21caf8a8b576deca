// Package ledger computes referral commission balances and gates withdrawals against them.
package ledger

import (
	"context"
	"time"

	"github.com/chris/referral-ledger/pkg/events"
	"github.com/chris/referral-ledger/pkg/metrics"
	"github.com/chris/referral-ledger/pkg/models"
	"github.com/chris/referral-ledger/pkg/storage"
	"github.com/shopspring/decimal"
)

// DefaultCommissionRate is the fraction of each purchase credited to the referring partner.
var DefaultCommissionRate = decimal.RequireFromString("0.10")

// DefaultMaxRetries bounds how often a withdrawal is re-validated after losing a version race.
const DefaultMaxRetries = 3

// PartnerDirectory is the partner lookup the ledger trusts as its authorization boundary.
type PartnerDirectory interface {
	// ResolveApprovedPartner returns nil without an error for unknown or unapproved codes.
	ResolveApprovedPartner(ctx context.Context, referralCode string) (*models.Partner, error)
	VerifyCredential(ctx context.Context, referralCode, secret string) (bool, error)
}

// Service defines the ledger operations used by the HTTP layer and the lambdas.
type Service interface {
	ComputeEarnings(ctx context.Context, referralCode string) (models.Money, error)
	ComputeWithdrawn(ctx context.Context, referralCode string, statuses ...models.WithdrawalStatus) (models.Money, error)
	AvailableBalance(ctx context.Context, referralCode string) (models.Money, error)
	RequestWithdrawal(ctx context.Context, in WithdrawalInput) (*models.WithdrawalRequest, error)
	DecideWithdrawal(ctx context.Context, id string, decision Decision) (*models.WithdrawalRequest, error)
	BulkReject(ctx context.Context, ids []string) (*BulkResult, error)
	RecordApprovedPurchase(ctx context.Context, in PurchaseInput) (*models.PurchaseRecord, bool, error)
	Dashboard(ctx context.Context, referralCode string) (*Dashboard, error)
	History(ctx context.Context, referralCode string) ([]models.WithdrawalRequest, error)
	ListWithdrawals(ctx context.Context) ([]models.WithdrawalRequest, error)
	StalePendingWithdrawals(ctx context.Context, maxAge time.Duration) ([]models.WithdrawalRequest, error)
}

// Config carries the ledger's tunables.
type Config struct {
	CommissionRate decimal.Decimal
	MaxRetries     int
}

// Ledger implements Service.
type Ledger struct {
	Store      storage.LedgerStore
	Directory  PartnerDirectory
	Publisher  events.Publisher
	Metrics    *metrics.LedgerMetrics
	Rate       decimal.Decimal
	MaxRetries int
	Now        func() time.Time
}

// New creates a Ledger. A zero rate or negative retry bound falls back to the defaults.
func New(store storage.LedgerStore, directory PartnerDirectory, publisher events.Publisher, m *metrics.LedgerMetrics, cfg Config) *Ledger {
	rate := cfg.CommissionRate
	if !rate.IsPositive() {
		rate = DefaultCommissionRate
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = DefaultMaxRetries
	}
	if publisher == nil {
		publisher = events.NoOpPublisher{}
	}
	return &Ledger{
		Store:      store,
		Directory:  directory,
		Publisher:  publisher,
		Metrics:    m,
		Rate:       rate,
		MaxRetries: retries,
		Now:        func() time.Time { return time.Now().UTC() },
	}
}

// Make sure we conform to the interface
var _ Service = (*Ledger)(nil)

// Dashboard is the partner-facing balance summary.
type Dashboard struct {
	Name             string
	ReferralCode     string
	TotalEarnings    models.Money
	TotalWithdrawn   models.Money
	LifetimeEarnings models.Money
	AvailableBalance models.Money
	Purchases        []models.PurchaseRecord
}

// ComputeEarnings returns rate × Σ purchase amounts, rounded once to two places.
func (l *Ledger) ComputeEarnings(ctx context.Context, referralCode string) (models.Money, error) {
	purchases, err := l.Store.ListPurchasesByReferralCode(ctx, referralCode)
	if err != nil {
		return models.ZeroMoney, Storage("list purchases", err)
	}
	return l.earnings(purchases), nil
}

func (l *Ledger) earnings(purchases []models.PurchaseRecord) models.Money {
	total := decimal.Zero
	for _, p := range purchases {
		total = total.Add(p.Amount.Decimal)
	}
	return models.NewMoney(total.Mul(l.Rate)).Round()
}

// ComputeWithdrawn sums withdrawals for the code whose status is in statuses.
func (l *Ledger) ComputeWithdrawn(ctx context.Context, referralCode string, statuses ...models.WithdrawalStatus) (models.Money, error) {
	withdrawals, err := l.Store.ListWithdrawalsByReferralCode(ctx, referralCode)
	if err != nil {
		return models.ZeroMoney, Storage("list withdrawals", err)
	}
	return withdrawn(withdrawals, statuses...), nil
}

func withdrawn(withdrawals []models.WithdrawalRequest, statuses ...models.WithdrawalStatus) models.Money {
	total := models.ZeroMoney
	for _, w := range withdrawals {
		for _, s := range statuses {
			if w.Status == s {
				total = total.Add(w.Amount)
				break
			}
		}
	}
	return total
}

// AvailableBalance is earnings minus pending and paid withdrawals.
func (l *Ledger) AvailableBalance(ctx context.Context, referralCode string) (models.Money, error) {
	earned, err := l.ComputeEarnings(ctx, referralCode)
	if err != nil {
		return models.ZeroMoney, err
	}
	out, err := l.ComputeWithdrawn(ctx, referralCode, models.PENDING, models.PAID)
	if err != nil {
		return models.ZeroMoney, err
	}
	return earned.Sub(out), nil
}

// Dashboard returns the balance summary for an approved partner.
func (l *Ledger) Dashboard(ctx context.Context, referralCode string) (*Dashboard, error) {
	if referralCode == "" {
		return nil, Validation("referral code is required")
	}
	partner, err := l.authorize(ctx, referralCode)
	if err != nil {
		return nil, err
	}

	purchases, err := l.Store.ListPurchasesByReferralCode(ctx, referralCode)
	if err != nil {
		return nil, Storage("list purchases", err)
	}
	withdrawals, err := l.Store.ListWithdrawalsByReferralCode(ctx, referralCode)
	if err != nil {
		return nil, Storage("list withdrawals", err)
	}

	earned := l.earnings(purchases)
	out := withdrawn(withdrawals, models.PENDING, models.PAID)
	if purchases == nil {
		purchases = []models.PurchaseRecord{}
	}

	return &Dashboard{
		Name:             partner.Name,
		ReferralCode:     partner.ReferralCode,
		TotalEarnings:    earned,
		TotalWithdrawn:   out,
		LifetimeEarnings: earned,
		AvailableBalance: earned.Sub(out),
		Purchases:        purchases,
	}, nil
}

// History lists the code's withdrawal requests, newest first.
func (l *Ledger) History(ctx context.Context, referralCode string) ([]models.WithdrawalRequest, error) {
	if referralCode == "" {
		return nil, Validation("referral code is required")
	}
	withdrawals, err := l.Store.ListWithdrawalsByReferralCode(ctx, referralCode)
	if err != nil {
		return nil, Storage("list withdrawals", err)
	}
	return withdrawals, nil
}

// ListWithdrawals lists every withdrawal request, newest first.
func (l *Ledger) ListWithdrawals(ctx context.Context) ([]models.WithdrawalRequest, error) {
	withdrawals, err := l.Store.ListWithdrawals(ctx)
	if err != nil {
		return nil, Storage("list withdrawals", err)
	}
	return withdrawals, nil
}

// StalePendingWithdrawals lists pending requests waiting longer than maxAge.
func (l *Ledger) StalePendingWithdrawals(ctx context.Context, maxAge time.Duration) ([]models.WithdrawalRequest, error) {
	if maxAge <= 0 {
		return nil, Validation("max age must be positive")
	}
	stale, err := l.Store.ListPendingWithdrawalsOlderThan(ctx, l.Now().Add(-maxAge))
	if err != nil {
		return nil, Storage("list stale withdrawals", err)
	}
	return stale, nil
}

func (l *Ledger) authorize(ctx context.Context, referralCode string) (*models.Partner, error) {
	partner, err := l.Directory.ResolveApprovedPartner(ctx, referralCode)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, Unauthorized("referral code is unknown or not approved")
	}
	return partner, nil
}
