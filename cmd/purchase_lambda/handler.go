package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	ledgerevents "github.com/chris/referral-ledger/pkg/events"
	"github.com/chris/referral-ledger/pkg/ledger"
)

// Handler records approved orders delivered over SQS.
type Handler struct {
	Ledger ledger.Service
}

// HandleRequest reports only retryable failures back to SQS. Malformed and invalid messages are
// logged and dropped since redelivery cannot fix them.
func (h *Handler) HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
	var resp events.SQSEventResponse

	for _, message := range sqsEvent.Records {
		var order ledgerevents.OrderApproved
		if err := json.Unmarshal([]byte(message.Body), &order); err != nil {
			slog.Error("failed to unmarshal order from SQS message, dropping", "message_id", message.MessageId, "error", err)
			continue
		}

		if order.Amount == nil {
			slog.Error("order without amount, dropping", "message_id", message.MessageId, "order_id", order.OrderID)
			continue
		}

		record, created, err := h.Ledger.RecordApprovedPurchase(ctx, ledger.PurchaseInput{
			OrderID:      order.OrderID,
			ReferralCode: order.ReferralCode,
			Buyer:        order.Buyer,
			Amount:       *order.Amount,
			OccurredAt:   order.ApprovedAt,
		})
		switch {
		case errors.Is(err, ledger.ErrValidation):
			slog.Error("invalid order, dropping", "message_id", message.MessageId, "order_id", order.OrderID, "error", err)
		case err != nil:
			slog.Error("failed to record purchase", "message_id", message.MessageId, "order_id", order.OrderID, "error", err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
		case created:
			slog.Info("purchase recorded", "order_id", record.OrderID, "referral_code", record.ReferralCode, "amount", record.Amount.String())
		default:
			slog.Info("order skipped", "order_id", order.OrderID, "reason", "duplicate or unattributed")
		}
	}

	return resp, nil
}
