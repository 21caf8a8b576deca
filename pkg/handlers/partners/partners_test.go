package partners_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/referral-ledger/pkg/api"
	"github.com/chris/referral-ledger/pkg/handlers/partners"
	"github.com/chris/referral-ledger/pkg/ledger"
	"github.com/chris/referral-ledger/pkg/models"
	partnersvc "github.com/chris/referral-ledger/pkg/partners"
	"github.com/chris/referral-ledger/pkg/partners/mocks"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)

func newHandler(svc partnersvc.Service) *partners.PartnersHandler {
	return partners.NewPartnersHandler(svc, validator.New(validator.WithRequiredStructEnabled()))
}

func TestLogin(t *testing.T) {
	body := `{"referralCode":"R1","password":"hunter22"}`

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(mocks.Service)
		mockSvc.On("Login", mock.Anything, "R1", "hunter22").Once().
			Return(&models.Partner{ReferralCode: "R1", Name: "Partner One", Email: "one@example.com", Status: models.PartnerApproved}, nil)

		rr := httptest.NewRecorder()
		newHandler(mockSvc).Login(rr, httptest.NewRequest(http.MethodPost, "/referrals/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"referralCode":"R1","name":"Partner One","email":"one@example.com"}`, rr.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockSvc := new(mocks.Service)
		mockSvc.On("Login", mock.Anything, "R1", "hunter22").Once().Return(nil, ledger.Unauthorized("incorrect password"))

		rr := httptest.NewRecorder()
		newHandler(mockSvc).Login(rr, httptest.NewRequest(http.MethodPost, "/referrals/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Unknown code", func(t *testing.T) {
		mockSvc := new(mocks.Service)
		mockSvc.On("Login", mock.Anything, "R1", "hunter22").Once().Return(nil, ledger.NotFound("referral code not found or not approved"))

		rr := httptest.NewRecorder()
		newHandler(mockSvc).Login(rr, httptest.NewRequest(http.MethodPost, "/referrals/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestApplyPartner(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(mocks.Service)
		mockSvc.On("Apply", mock.Anything, mock.MatchedBy(func(app partnersvc.Application) bool {
			return app.ReferralCode == "NEW" && app.Email == "" && app.ProfileLink == "https://example.com/new"
		})).Once().Return(&models.Partner{ReferralCode: "NEW", ReferralID: "rid-1", Status: models.PartnerPending}, nil)

		body := `{"name":"Newcomer","referralCode":"NEW","profileLink":"https://example.com/new","password":"secret1"}`
		rr := httptest.NewRecorder()
		newHandler(mockSvc).ApplyPartner(rr, httptest.NewRequest(http.MethodPost, "/referrals/apply", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got api.ApplicationReceipt
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "rid-1", got.ReferralId)
		assert.Equal(t, api.PartnerStatusPending, got.Status)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Code taken", func(t *testing.T) {
		mockSvc := new(mocks.Service)
		mockSvc.On("Apply", mock.Anything, mock.Anything).Once().Return(nil, ledger.InvalidState("referral code already in use"))

		body := `{"name":"Newcomer","referralCode":"R1","profileLink":"https://example.com/new","password":"secret1"}`
		rr := httptest.NewRecorder()
		newHandler(mockSvc).ApplyPartner(rr, httptest.NewRequest(http.MethodPost, "/referrals/apply", strings.NewReader(body)))

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Invalid email", func(t *testing.T) {
		mockSvc := new(mocks.Service)

		body := `{"name":"Newcomer","email":"nope","referralCode":"NEW","profileLink":"https://example.com/new","password":"secret1"}`
		rr := httptest.NewRecorder()
		newHandler(mockSvc).ApplyPartner(rr, httptest.NewRequest(http.MethodPost, "/referrals/apply", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Email")
		mockSvc.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
	})
}

func TestListApprovedCodes(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		mockSvc := new(mocks.Service)
		mockSvc.On("ApprovedCodes", mock.Anything).Once().Return(nil, nil)

		rr := httptest.NewRecorder()
		newHandler(mockSvc).ListApprovedCodes(rr, httptest.NewRequest(http.MethodGet, "/referrals/approved-codes", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"codes":[]}`, rr.Body.String())
	})

	t.Run("Storage failure", func(t *testing.T) {
		mockSvc := new(mocks.Service)
		mockSvc.On("ApprovedCodes", mock.Anything).Once().Return(nil, ledger.Storage("list approved partners", assert.AnError))

		rr := httptest.NewRecorder()
		newHandler(mockSvc).ListApprovedCodes(rr, httptest.NewRequest(http.MethodGet, "/referrals/approved-codes", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"kind":"storage","message":"internal error"}`, rr.Body.String())
	})
}

func TestListPartners(t *testing.T) {
	mockSvc := new(mocks.Service)
	mockSvc.On("ListApplicants", mock.Anything).Once().Return([]models.Partner{
		{ReferralCode: "P1", Status: models.PartnerPending, CreatedAt: createdAt},
		{ReferralCode: "R1", Status: models.PartnerApproved, CreatedAt: createdAt},
	}, nil)
	pending := api.PartnerStatusPending

	rr := httptest.NewRecorder()
	newHandler(mockSvc).ListPartners(rr, httptest.NewRequest(http.MethodGet, "/admin/partners?status=pending", nil), api.ListPartnersParams{Status: &pending})

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []api.Partner
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "P1", got[0].ReferralCode)
	assert.NotContains(t, rr.Body.String(), "password")
	mockSvc.AssertExpectations(t)
}

func TestPartnerDecisions(t *testing.T) {
	t.Run("Approve", func(t *testing.T) {
		mockSvc := new(mocks.Service)
		mockSvc.On("Approve", mock.Anything, "P1").Once().Return(&models.Partner{ReferralCode: "P1", Status: models.PartnerApproved, CreatedAt: createdAt}, nil)

		rr := httptest.NewRecorder()
		newHandler(mockSvc).ApprovePartner(rr, httptest.NewRequest(http.MethodPost, "/admin/partners/P1/approve", nil), "P1")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"approved"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Reject", func(t *testing.T) {
		mockSvc := new(mocks.Service)
		mockSvc.On("Reject", mock.Anything, "P1").Once().Return(nil)

		rr := httptest.NewRecorder()
		newHandler(mockSvc).RejectPartner(rr, httptest.NewRequest(http.MethodPost, "/admin/partners/P1/reject", nil), "P1")

		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Reject processed applicant", func(t *testing.T) {
		mockSvc := new(mocks.Service)
		mockSvc.On("Reject", mock.Anything, "R1").Once().Return(ledger.InvalidState("partner R1 is not pending"))

		rr := httptest.NewRecorder()
		newHandler(mockSvc).RejectPartner(rr, httptest.NewRequest(http.MethodPost, "/admin/partners/R1/reject", nil), "R1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Bulk reject", func(t *testing.T) {
		mockSvc := new(mocks.Service)
		mockSvc.On("BulkReject", mock.Anything, []string{"P1", "R1"}).Once().
			Return(&partnersvc.BulkResult{Rejected: []string{"P1"}, Skipped: []string{"R1"}}, nil)

		rr := httptest.NewRecorder()
		newHandler(mockSvc).BulkRejectPartners(rr, httptest.NewRequest(http.MethodPost, "/admin/partners/bulk-reject", strings.NewReader(`{"referralCodes":["P1","R1"]}`)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"rejected":["P1"],"skipped":["R1"]}`, rr.Body.String())
		mockSvc.AssertExpectations(t)
	})
}
