package partners

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chris/referral-ledger/pkg/ledger"
	"github.com/chris/referral-ledger/pkg/models"
	"github.com/chris/referral-ledger/pkg/storage"
	"github.com/chris/referral-ledger/pkg/storage/memory"
	"github.com/chris/referral-ledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestDirectory() (*Directory, *memory.Store) {
	store := memory.New(storage.RejectDelete)
	d := NewDirectory(store, NewBcryptHasher(bcrypt.MinCost))
	d.Now = func() time.Time { return now }
	return d, store
}

func application(code string) Application {
	return Application{
		Name:         "Rahim Uddin",
		Email:        "rahim@example.com",
		Mobile:       "01700000000",
		ReferralCode: code,
		ProfileLink:  "https://facebook.com/rahim",
		Password:     "hunter2",
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		d, store := newTestDirectory()

		p, err := d.Apply(ctx, application("RAHIM10"))
		require.NoError(t, err)
		assert.Equal(t, models.PartnerPending, p.Status)
		assert.NotEmpty(t, p.ReferralID)
		assert.NotEqual(t, "hunter2", p.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("hunter2")))

		stored, err := store.GetPartner(ctx, "RAHIM10")
		require.NoError(t, err)
		assert.Equal(t, p.ReferralID, stored.ReferralID)
	})

	t.Run("Code In Use", func(t *testing.T) {
		d, _ := newTestDirectory()
		_, err := d.Apply(ctx, application("RAHIM10"))
		require.NoError(t, err)

		_, err = d.Apply(ctx, application("RAHIM10"))
		assert.ErrorIs(t, err, ledger.ErrInvalidState)
		assert.Contains(t, err.Error(), "already in use")
	})

	t.Run("Missing Fields", func(t *testing.T) {
		d, _ := newTestDirectory()
		for _, mutate := range []func(*Application){
			func(a *Application) { a.Name = "" },
			func(a *Application) { a.ReferralCode = " " },
			func(a *Application) { a.ProfileLink = "" },
			func(a *Application) { a.Password = "" },
		} {
			app := application("X1")
			mutate(&app)
			_, err := d.Apply(ctx, app)
			assert.ErrorIs(t, err, ledger.ErrValidation)
		}
	})

	t.Run("Store Failure", func(t *testing.T) {
		mockStore := new(mocks.PartnerStore)
		mockStore.On("CreatePartner", mock.Anything, mock.Anything).Return(errors.New("throttled"))
		d := NewDirectory(mockStore, NewBcryptHasher(bcrypt.MinCost))

		_, err := d.Apply(ctx, application("X1"))
		assert.ErrorIs(t, err, ledger.ErrStorage)
		mockStore.AssertExpectations(t)
	})
}

func TestResolveAndVerify(t *testing.T) {
	ctx := context.Background()
	d, _ := newTestDirectory()
	_, err := d.Apply(ctx, application("R1"))
	require.NoError(t, err)

	p, err := d.ResolveApprovedPartner(ctx, "R1")
	require.NoError(t, err)
	assert.Nil(t, p, "pending partners are not resolved")

	p, err = d.ResolveApprovedPartner(ctx, "UNKNOWN")
	require.NoError(t, err)
	assert.Nil(t, p)

	ok, err := d.VerifyCredential(ctx, "R1", "hunter2")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = d.Approve(ctx, "R1")
	require.NoError(t, err)

	p, err = d.ResolveApprovedPartner(ctx, "R1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Rahim Uddin", p.Name)

	ok, err = d.VerifyCredential(ctx, "R1", "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.VerifyCredential(ctx, "R1", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveStoreFailure(t *testing.T) {
	mockStore := new(mocks.PartnerStore)
	mockStore.On("GetPartner", mock.Anything, "R1").Return(nil, errors.New("timeout"))
	d := NewDirectory(mockStore, NewBcryptHasher(bcrypt.MinCost))

	_, err := d.ResolveApprovedPartner(context.Background(), "R1")
	assert.ErrorIs(t, err, ledger.ErrStorage)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	d, _ := newTestDirectory()
	_, err := d.Apply(ctx, application("R1"))
	require.NoError(t, err)

	_, err = d.Login(ctx, "R1", "hunter2")
	assert.ErrorIs(t, err, ledger.ErrNotFound)

	_, err = d.Approve(ctx, "R1")
	require.NoError(t, err)

	p, err := d.Login(ctx, "R1", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "rahim@example.com", p.Email)

	_, err = d.Login(ctx, "R1", "wrong")
	assert.ErrorIs(t, err, ledger.ErrUnauthorized)

	_, err = d.Login(ctx, "", "")
	assert.ErrorIs(t, err, ledger.ErrValidation)
}

func TestApplicantDecisions(t *testing.T) {
	ctx := context.Background()

	t.Run("Approve", func(t *testing.T) {
		d, _ := newTestDirectory()
		_, err := d.Apply(ctx, application("R1"))
		require.NoError(t, err)

		p, err := d.Approve(ctx, "R1")
		require.NoError(t, err)
		assert.Equal(t, models.PartnerApproved, p.Status)

		_, err = d.Approve(ctx, "R1")
		assert.ErrorIs(t, err, ledger.ErrInvalidState)

		_, err = d.Approve(ctx, "MISSING")
		assert.ErrorIs(t, err, ledger.ErrNotFound)
	})

	t.Run("Reject", func(t *testing.T) {
		d, store := newTestDirectory()
		_, err := d.Apply(ctx, application("R1"))
		require.NoError(t, err)

		require.NoError(t, d.Reject(ctx, "R1"))
		_, err = store.GetPartner(ctx, "R1")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		assert.ErrorIs(t, d.Reject(ctx, "R1"), ledger.ErrNotFound)
		assert.ErrorIs(t, d.Reject(ctx, ""), ledger.ErrValidation)
	})

	t.Run("Reject Approved", func(t *testing.T) {
		d, _ := newTestDirectory()
		_, err := d.Apply(ctx, application("R1"))
		require.NoError(t, err)
		_, err = d.Approve(ctx, "R1")
		require.NoError(t, err)

		assert.ErrorIs(t, d.Reject(ctx, "R1"), ledger.ErrInvalidState)
	})

	t.Run("Bulk Reject", func(t *testing.T) {
		d, _ := newTestDirectory()
		for _, code := range []string{"A", "B", "C"} {
			_, err := d.Apply(ctx, application(code))
			require.NoError(t, err)
		}
		_, err := d.Approve(ctx, "C")
		require.NoError(t, err)

		result, err := d.BulkReject(ctx, []string{"A", "B", "C", "Z"})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, result.Rejected)
		assert.Equal(t, []string{"C", "Z"}, result.Skipped)

		codes, err := d.ApprovedCodes(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"C"}, codes)

		_, err = d.BulkReject(ctx, []string{})
		assert.ErrorIs(t, err, ledger.ErrValidation)
	})
}

func TestListApplicants(t *testing.T) {
	ctx := context.Background()
	d, _ := newTestDirectory()
	for i, code := range []string{"FIRST", "SECOND"} {
		d.Now = func() time.Time { return now.Add(time.Duration(i) * time.Hour) }
		_, err := d.Apply(ctx, application(code))
		require.NoError(t, err)
	}

	applicants, err := d.ListApplicants(ctx)
	require.NoError(t, err)
	require.Len(t, applicants, 2)
	assert.Equal(t, "SECOND", applicants[0].ReferralCode)
	assert.Equal(t, "FIRST", applicants[1].ReferralCode)
}
