package ledger

import (
	"fmt"

	"github.com/chris/referral-ledger/pkg/models"
)

// transitions lists the allowed withdrawal status changes. Paid and rejected are terminal.
var transitions = map[models.WithdrawalStatus][]models.WithdrawalStatus{
	models.PENDING: {models.PAID, models.REJECTED},
}

func canTransition(from, to models.WithdrawalStatus) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return InvalidState(fmt.Sprintf("cannot move withdrawal from %s to %s", from, to))
}

func target(d Decision) models.WithdrawalStatus {
	if d == Approve {
		return models.PAID
	}
	return models.REJECTED
}
