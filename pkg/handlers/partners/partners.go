package partners

import (
	"net/http"

	"github.com/chris/referral-ledger/pkg/api"
	"github.com/chris/referral-ledger/pkg/handlers/respond"
	"github.com/chris/referral-ledger/pkg/mapping"
	partnersvc "github.com/chris/referral-ledger/pkg/partners"
	"github.com/go-playground/validator/v10"
)

// PartnersHandler holds the dependencies for partner directory handlers.
type PartnersHandler struct {
	Partners partnersvc.Service
	Validate *validator.Validate
}

// NewPartnersHandler creates a new PartnersHandler.
func NewPartnersHandler(svc partnersvc.Service, validate *validator.Validate) *PartnersHandler {
	return &PartnersHandler{Partners: svc, Validate: validate}
}

// Login verifies an approved partner's password.
func (h *PartnersHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := respond.Decode(r, h.Validate, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := h.Partners.Login(r.Context(), req.ReferralCode, req.Password)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiLoginResponse(p))
}

// ApplyPartner registers a pending applicant.
func (h *PartnersHandler) ApplyPartner(w http.ResponseWriter, r *http.Request) {
	var req api.PartnerApplication
	if err := respond.Decode(r, h.Validate, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := h.Partners.Apply(r.Context(), mapping.ToDomainApplication(&req))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiApplicationReceipt(p))
}

func (h *PartnersHandler) ListApprovedCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.Partners.ApprovedCodes(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if codes == nil {
		codes = []string{}
	}

	respond.JSON(w, http.StatusOK, api.ApprovedCodes{Codes: codes})
}

// ListPartners lists applicants for the admin view, newest first.
func (h *PartnersHandler) ListPartners(w http.ResponseWriter, r *http.Request, params api.ListPartnersParams) {
	all, err := h.Partners.ListApplicants(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiPartners(mapping.FilterPartners(all, params.Status)))
}

func (h *PartnersHandler) ApprovePartner(w http.ResponseWriter, r *http.Request, referralCode api.ReferralCode) {
	p, err := h.Partners.Approve(r.Context(), referralCode)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiPartner(p))
}

func (h *PartnersHandler) RejectPartner(w http.ResponseWriter, r *http.Request, referralCode api.ReferralCode) {
	if err := h.Partners.Reject(r.Context(), referralCode); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PartnersHandler) BulkRejectPartners(w http.ResponseWriter, r *http.Request) {
	var req api.BulkRejectPartnersRequest
	if err := respond.Decode(r, h.Validate, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	res, err := h.Partners.BulkReject(r.Context(), req.ReferralCodes)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiBulkRejectResult(res.Rejected, res.Skipped))
}
