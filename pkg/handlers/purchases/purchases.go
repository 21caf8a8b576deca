package purchases

import (
	"net/http"

	"github.com/chris/referral-ledger/pkg/api"
	"github.com/chris/referral-ledger/pkg/handlers/respond"
	"github.com/chris/referral-ledger/pkg/ledger"
	"github.com/chris/referral-ledger/pkg/mapping"
	"github.com/go-playground/validator/v10"
)

// PurchasesHandler accepts approved orders from the order system.
type PurchasesHandler struct {
	Ledger   ledger.Service
	Validate *validator.Validate
}

// NewPurchasesHandler creates a new PurchasesHandler.
func NewPurchasesHandler(l ledger.Service, validate *validator.Validate) *PurchasesHandler {
	return &PurchasesHandler{Ledger: l, Validate: validate}
}

// RecordPurchase answers 201 when a record was written and 200 for duplicates and unattributed orders.
func (h *PurchasesHandler) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	var req api.NewPurchase
	if err := respond.Decode(r, h.Validate, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	record, created, err := h.Ledger.RecordApprovedPurchase(r.Context(), mapping.ToDomainPurchaseInput(&req))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respond.JSON(w, status, mapping.ToApiPurchaseResult(record, created))
}
