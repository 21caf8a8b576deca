package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithdrawalValidate(t *testing.T) {
	now := time.Now()
	valid := func() WithdrawalRequest {
		return WithdrawalRequest{
			Id:            "w1",
			ReferralCode:  "R1",
			PaymentMethod: BankTransfer,
			AccountNumber: "123",
			Amount:        MoneyFromInt(5),
			Status:        PENDING,
		}
	}

	w := valid()
	assert.NoError(t, w.Validate())

	w = valid()
	w.PaidAt = &now
	assert.ErrorIs(t, w.Validate(), ErrInvalidRecord)

	w = valid()
	w.Status = PAID
	assert.ErrorIs(t, w.Validate(), ErrInvalidRecord)
	w.PaidAt = &now
	assert.NoError(t, w.Validate())

	w = valid()
	w.Amount = ZeroMoney
	assert.ErrorIs(t, w.Validate(), ErrInvalidRecord)

	w = valid()
	w.Status = "cancelled"
	assert.ErrorIs(t, w.Validate(), ErrInvalidRecord)
}

func TestPurchaseValidate(t *testing.T) {
	p := PurchaseRecord{OrderID: "o1", ReferralCode: "R1", Amount: ZeroMoney, OccurredAt: time.Now()}
	assert.NoError(t, p.Validate())

	p.Amount = MustParseMoney("-0.01")
	assert.ErrorIs(t, p.Validate(), ErrInvalidRecord)
}

func TestPaymentMethodIsValid(t *testing.T) {
	for _, m := range []PaymentMethod{Bkash, Nagad, Rocket, BankTransfer} {
		assert.True(t, m.IsValid(), m)
	}
	assert.False(t, PaymentMethod("bkash").IsValid())
}
