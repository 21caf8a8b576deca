// Package memory provides an in-process implementation of the storage interfaces.
// It backs local development and the ledger's unit tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chris/referral-ledger/pkg/models"
	"github.com/chris/referral-ledger/pkg/storage"
)

// Store implements storage.Storage with maps guarded by a single mutex.
type Store struct {
	mu          sync.RWMutex
	policy      storage.RejectionPolicy
	purchases   map[string]models.PurchaseRecord
	withdrawals map[string]models.WithdrawalRequest
	accounts    map[string]models.Account
	partners    map[string]models.Partner
}

// New creates an empty Store with the given rejection policy.
func New(policy storage.RejectionPolicy) *Store {
	if !policy.IsValid() {
		policy = storage.RejectDelete
	}
	return &Store{
		policy:      policy,
		purchases:   make(map[string]models.PurchaseRecord),
		withdrawals: make(map[string]models.WithdrawalRequest),
		accounts:    make(map[string]models.Account),
		partners:    make(map[string]models.Partner),
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

func (s *Store) CreatePurchase(ctx context.Context, purchase *models.PurchaseRecord) error {
	if err := purchase.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.purchases[purchase.OrderID]; ok {
		return storage.ErrAlreadyExists
	}
	s.purchases[purchase.OrderID] = *purchase
	return nil
}

func (s *Store) ListPurchasesByReferralCode(ctx context.Context, referralCode string) ([]models.PurchaseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.PurchaseRecord
	for _, p := range s.purchases {
		if p.ReferralCode == referralCode {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}

func (s *Store) GetWithdrawal(ctx context.Context, id string) (*models.WithdrawalRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.withdrawals[id]
	if !ok {
		return nil, fmt.Errorf("withdrawal %s: %w", id, storage.ErrNotFound)
	}
	return &w, nil
}

func (s *Store) ListWithdrawalsByReferralCode(ctx context.Context, referralCode string) ([]models.WithdrawalRequest, error) {
	return s.filterWithdrawals(func(w models.WithdrawalRequest) bool { return w.ReferralCode == referralCode }), nil
}

func (s *Store) ListWithdrawals(ctx context.Context) ([]models.WithdrawalRequest, error) {
	return s.filterWithdrawals(func(models.WithdrawalRequest) bool { return true }), nil
}

func (s *Store) ListPendingWithdrawalsOlderThan(ctx context.Context, cutoff time.Time) ([]models.WithdrawalRequest, error) {
	return s.filterWithdrawals(func(w models.WithdrawalRequest) bool {
		return w.Status == models.PENDING && w.RequestedAt.Before(cutoff)
	}), nil
}

func (s *Store) filterWithdrawals(keep func(models.WithdrawalRequest) bool) []models.WithdrawalRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.WithdrawalRequest
	for _, w := range s.withdrawals {
		if keep(w) {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestedAt.After(out[j].RequestedAt) })
	return out
}

func (s *Store) GetAccount(ctx context.Context, referralCode string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct, ok := s.accounts[referralCode]
	if !ok {
		return &models.Account{ReferralCode: referralCode}, nil
	}
	return &acct, nil
}

func (s *Store) CreateWithdrawal(ctx context.Context, w *models.WithdrawalRequest, expectedVersion int64) error {
	if err := w.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.accounts[w.ReferralCode]
	if acct.Version != expectedVersion {
		return storage.ErrVersionConflict
	}
	if _, ok := s.withdrawals[w.Id]; ok {
		return storage.ErrAlreadyExists
	}
	s.accounts[w.ReferralCode] = models.Account{
		ReferralCode: w.ReferralCode,
		Version:      expectedVersion + 1,
		UpdatedAt:    w.RequestedAt,
	}
	s.withdrawals[w.Id] = *w
	return nil
}

func (s *Store) MarkWithdrawalPaid(ctx context.Context, w *models.WithdrawalRequest, paidAt time.Time) (*models.WithdrawalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.withdrawals[w.Id]
	if !ok {
		return nil, fmt.Errorf("withdrawal %s: %w", w.Id, storage.ErrNotFound)
	}
	if current.Status != models.PENDING {
		return nil, storage.ErrNotPending
	}
	current.Status = models.PAID
	current.PaidAt = &paidAt
	current.UpdatedAt = paidAt
	s.withdrawals[w.Id] = current
	return &current, nil
}

func (s *Store) RejectWithdrawal(ctx context.Context, w *models.WithdrawalRequest, rejectedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.withdrawals[w.Id]
	if !ok {
		return fmt.Errorf("withdrawal %s: %w", w.Id, storage.ErrNotFound)
	}
	if current.Status != models.PENDING {
		return storage.ErrNotPending
	}
	if s.policy == storage.RejectArchive {
		current.Status = models.REJECTED
		current.RejectedAt = &rejectedAt
		current.UpdatedAt = rejectedAt
		s.withdrawals[w.Id] = current
		return nil
	}
	delete(s.withdrawals, w.Id)
	return nil
}

func (s *Store) RejectionPolicy() storage.RejectionPolicy {
	return s.policy
}

func (s *Store) GetPartner(ctx context.Context, referralCode string) (*models.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.partners[referralCode]
	if !ok {
		return nil, fmt.Errorf("partner %s: %w", referralCode, storage.ErrNotFound)
	}
	return &p, nil
}

func (s *Store) CreatePartner(ctx context.Context, partner *models.Partner) error {
	if err := partner.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.partners[partner.ReferralCode]; ok {
		return storage.ErrAlreadyExists
	}
	s.partners[partner.ReferralCode] = *partner
	return nil
}

func (s *Store) ListPartners(ctx context.Context) ([]models.Partner, error) {
	return s.filterPartners(func(models.Partner) bool { return true }), nil
}

func (s *Store) ListPartnersByStatus(ctx context.Context, status models.PartnerStatus) ([]models.Partner, error) {
	return s.filterPartners(func(p models.Partner) bool { return p.Status == status }), nil
}

func (s *Store) filterPartners(keep func(models.Partner) bool) []models.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Partner
	for _, p := range s.partners {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *Store) ApprovePartner(ctx context.Context, referralCode string, at time.Time) (*models.Partner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.partners[referralCode]
	if !ok {
		return nil, fmt.Errorf("partner %s: %w", referralCode, storage.ErrNotFound)
	}
	if p.Status != models.PartnerPending {
		return nil, storage.ErrPartnerNotPending
	}
	p.Status = models.PartnerApproved
	p.UpdatedAt = at
	s.partners[referralCode] = p
	return &p, nil
}

func (s *Store) DeletePendingPartner(ctx context.Context, referralCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.partners[referralCode]
	if !ok {
		return fmt.Errorf("partner %s: %w", referralCode, storage.ErrNotFound)
	}
	if p.Status != models.PartnerPending {
		return storage.ErrPartnerNotPending
	}
	delete(s.partners, referralCode)
	return nil
}
