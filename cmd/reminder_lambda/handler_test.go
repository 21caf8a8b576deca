package main

import (
	"context"
	"testing"
	"time"

	"github.com/chris/referral-ledger/pkg/events"
	eventmocks "github.com/chris/referral-ledger/pkg/events/mocks"
	"github.com/chris/referral-ledger/pkg/ledger/mocks"
	"github.com/chris/referral-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandleRequest(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	stale := []models.WithdrawalRequest{
		{Id: "w-1", ReferralCode: "R1", Status: models.PENDING, Amount: models.MustParseMoney("10"), RequestedAt: now.Add(-96 * time.Hour)},
		{Id: "w-2", ReferralCode: "R2", Status: models.PENDING, Amount: models.MustParseMoney("20"), RequestedAt: now.Add(-80 * time.Hour)},
	}

	newHandler := func(l *mocks.Service, p *eventmocks.Publisher) *Handler {
		return &Handler{Ledger: l, Publisher: p, StaleAfter: 72 * time.Hour, Now: func() time.Time { return now }}
	}

	t.Run("Success", func(t *testing.T) {
		mockLedger := new(mocks.Service)
		mockPublisher := new(eventmocks.Publisher)
		mockLedger.On("StalePendingWithdrawals", mock.Anything, 72*time.Hour).Once().Return(stale, nil)
		mockPublisher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
			return e.Type == events.WithdrawalStale && e.OccurredAt.Equal(now)
		})).Twice().Return(nil)

		summary, err := newHandler(mockLedger, mockPublisher).HandleRequest(context.Background())

		require.NoError(t, err)
		assert.Equal(t, Summary{Stale: 2, Published: 2}, summary)
		mockLedger.AssertExpectations(t)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("Publish failure does not stop the batch", func(t *testing.T) {
		mockLedger := new(mocks.Service)
		mockPublisher := new(eventmocks.Publisher)
		mockLedger.On("StalePendingWithdrawals", mock.Anything, mock.Anything).Once().Return(stale, nil)
		mockPublisher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool { return e.WithdrawalID == "w-1" })).Once().Return(assert.AnError)
		mockPublisher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool { return e.WithdrawalID == "w-2" })).Once().Return(nil)

		summary, err := newHandler(mockLedger, mockPublisher).HandleRequest(context.Background())

		require.NoError(t, err)
		assert.Equal(t, Summary{Stale: 2, Published: 1, Failed: 1}, summary)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("Nothing stale", func(t *testing.T) {
		mockLedger := new(mocks.Service)
		mockPublisher := new(eventmocks.Publisher)
		mockLedger.On("StalePendingWithdrawals", mock.Anything, mock.Anything).Once().Return([]models.WithdrawalRequest{}, nil)

		summary, err := newHandler(mockLedger, mockPublisher).HandleRequest(context.Background())

		require.NoError(t, err)
		assert.Equal(t, Summary{}, summary)
		mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Ledger failure", func(t *testing.T) {
		mockLedger := new(mocks.Service)
		mockLedger.On("StalePendingWithdrawals", mock.Anything, mock.Anything).Once().Return(nil, assert.AnError)

		_, err := newHandler(mockLedger, new(eventmocks.Publisher)).HandleRequest(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list stale withdrawals")
	})
}
