package memory

import (
	"context"
	"testing"
	"time"

	"github.com/chris/referral-ledger/pkg/models"
	"github.com/chris/referral-ledger/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWithdrawal(id string, at time.Time) *models.WithdrawalRequest {
	return &models.WithdrawalRequest{
		Id:            id,
		ReferralCode:  "R1",
		PaymentMethod: models.Rocket,
		AccountNumber: "01900000000",
		Amount:        models.MoneyFromInt(10),
		Status:        models.PENDING,
		RequestedAt:   at,
		UpdatedAt:     at,
	}
}

func TestCreateWithdrawalVersioning(t *testing.T) {
	ctx := context.Background()
	store := New(storage.RejectDelete)
	at := time.Now().UTC()

	require.NoError(t, store.CreateWithdrawal(ctx, newWithdrawal("w1", at), 0))

	acct, err := store.GetAccount(ctx, "R1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), acct.Version)

	err = store.CreateWithdrawal(ctx, newWithdrawal("w2", at), 0)
	assert.ErrorIs(t, err, storage.ErrVersionConflict)

	err = store.CreateWithdrawal(ctx, newWithdrawal("w1", at), 1)
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	require.NoError(t, store.CreateWithdrawal(ctx, newWithdrawal("w2", at), 1))
}

func TestRejectionPolicies(t *testing.T) {
	ctx := context.Background()
	at := time.Now().UTC()

	for _, policy := range []storage.RejectionPolicy{storage.RejectDelete, storage.RejectArchive} {
		t.Run(string(policy), func(t *testing.T) {
			store := New(policy)
			w := newWithdrawal("w1", at)
			require.NoError(t, store.CreateWithdrawal(ctx, w, 0))

			require.NoError(t, store.RejectWithdrawal(ctx, w, at))

			got, err := store.GetWithdrawal(ctx, "w1")
			if policy == storage.RejectDelete {
				assert.ErrorIs(t, err, storage.ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.REJECTED, got.Status)
			assert.ErrorIs(t, store.RejectWithdrawal(ctx, w, at), storage.ErrNotPending)

			_, err = store.MarkWithdrawalPaid(ctx, w, at)
			assert.ErrorIs(t, err, storage.ErrNotPending)
		})
	}
}

func TestPartnerLifecycle(t *testing.T) {
	ctx := context.Background()
	store := New(storage.RejectDelete)
	p := &models.Partner{ReferralCode: "R1", Name: "Rahim", PasswordHash: "x", Status: models.PartnerPending}

	require.NoError(t, store.CreatePartner(ctx, p))
	assert.ErrorIs(t, store.CreatePartner(ctx, p), storage.ErrAlreadyExists)

	approved, err := store.ApprovePartner(ctx, "R1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.PartnerApproved, approved.Status)

	assert.ErrorIs(t, store.DeletePendingPartner(ctx, "R1"), storage.ErrPartnerNotPending)
	assert.ErrorIs(t, store.DeletePendingPartner(ctx, "R2"), storage.ErrNotFound)

	list, err := store.ListPartnersByStatus(ctx, models.PartnerApproved)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
