package withdrawals

import (
	"log/slog"
	"net/http"

	"github.com/chris/referral-ledger/pkg/api"
	"github.com/chris/referral-ledger/pkg/handlers/respond"
	"github.com/chris/referral-ledger/pkg/ledger"
	"github.com/chris/referral-ledger/pkg/mapping"
	"github.com/go-playground/validator/v10"
)

// WithdrawalsHandler serves the balance and withdrawal endpoints for partners and administrators.
type WithdrawalsHandler struct {
	Ledger   ledger.Service
	Validate *validator.Validate
}

// NewWithdrawalsHandler creates a new WithdrawalsHandler.
func NewWithdrawalsHandler(l ledger.Service, validate *validator.Validate) *WithdrawalsHandler {
	return &WithdrawalsHandler{Ledger: l, Validate: validate}
}

// GetDashboard returns the partner's earnings, withdrawn total and available balance.
func (h *WithdrawalsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	var req api.ReferralCodeRequest
	if err := respond.Decode(r, h.Validate, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	dashboard, err := h.Ledger.Dashboard(r.Context(), req.ReferralCode)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiDashboard(dashboard))
}

// RequestWithdrawal creates a pending withdrawal against the available balance.
func (h *WithdrawalsHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req api.NewWithdrawal
	if err := respond.Decode(r, h.Validate, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	created, err := h.Ledger.RequestWithdrawal(r.Context(), mapping.ToDomainWithdrawalInput(&req))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiWithdrawal(created))
}

// GetWithdrawalHistory lists the partner's own requests, newest first.
func (h *WithdrawalsHandler) GetWithdrawalHistory(w http.ResponseWriter, r *http.Request) {
	var req api.ReferralCodeRequest
	if err := respond.Decode(r, h.Validate, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	history, err := h.Ledger.History(r.Context(), req.ReferralCode)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiWithdrawals(history))
}

// ListWithdrawals lists every request for the admin view.
func (h *WithdrawalsHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request, params api.ListWithdrawalsParams) {
	all, err := h.Ledger.ListWithdrawals(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiWithdrawals(mapping.FilterWithdrawals(all, params.Status)))
}

func (h *WithdrawalsHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request, requestId api.RequestId) {
	h.decide(w, r, requestId, ledger.Approve)
}

func (h *WithdrawalsHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request, requestId api.RequestId) {
	h.decide(w, r, requestId, ledger.Reject)
}

func (h *WithdrawalsHandler) decide(w http.ResponseWriter, r *http.Request, requestId string, decision ledger.Decision) {
	updated, err := h.Ledger.DecideWithdrawal(r.Context(), requestId, decision)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	slog.Info("withdrawal decided", "withdrawal_id", requestId, "decision", decision)
	respond.JSON(w, http.StatusOK, mapping.ToApiWithdrawal(updated))
}

// BulkRejectWithdrawals rejects every listed request that is still pending.
func (h *WithdrawalsHandler) BulkRejectWithdrawals(w http.ResponseWriter, r *http.Request) {
	var req api.BulkRejectWithdrawalsRequest
	if err := respond.Decode(r, h.Validate, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	res, err := h.Ledger.BulkReject(r.Context(), req.RequestIds)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiBulkRejectResult(res.Rejected, res.Skipped))
}
