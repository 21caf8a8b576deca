package handlers

import (
	"github.com/chris/referral-ledger/pkg/api"
	"github.com/chris/referral-ledger/pkg/handlers/partners"
	"github.com/chris/referral-ledger/pkg/handlers/purchases"
	"github.com/chris/referral-ledger/pkg/handlers/withdrawals"
	"github.com/chris/referral-ledger/pkg/ledger"
	partnersvc "github.com/chris/referral-ledger/pkg/partners"
	"github.com/go-playground/validator/v10"
)

// ApiHandler implements the generated server interface by composing the per-resource handlers.
type ApiHandler struct {
	*withdrawals.WithdrawalsHandler
	*partners.PartnersHandler
	*purchases.PurchasesHandler
}

// NewApiHandler wires the ledger and partner directory into one server implementation.
func NewApiHandler(l ledger.Service, p partnersvc.Service) *ApiHandler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &ApiHandler{
		WithdrawalsHandler: withdrawals.NewWithdrawalsHandler(l, validate),
		PartnersHandler:    partners.NewPartnersHandler(p, validate),
		PurchasesHandler:   purchases.NewPurchasesHandler(l, validate),
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)
