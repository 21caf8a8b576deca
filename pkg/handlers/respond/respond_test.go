package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chris/referral-ledger/pkg/ledger"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := map[ledger.Kind]int{
		ledger.KindValidation:          http.StatusBadRequest,
		ledger.KindUnauthorized:        http.StatusUnauthorized,
		ledger.KindNotFound:            http.StatusNotFound,
		ledger.KindInvalidState:        http.StatusConflict,
		ledger.KindInsufficientBalance: http.StatusUnprocessableEntity,
		ledger.KindStorage:             http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, StatusFor(kind), string(kind))
	}
}

func TestError(t *testing.T) {
	t.Run("Client error keeps message", func(t *testing.T) {
		rr := httptest.NewRecorder()
		Error(rr, httptest.NewRequest(http.MethodGet, "/", nil), ledger.NotFound("withdrawal w-1"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"kind":"not_found","message":"not found: withdrawal w-1"}`, rr.Body.String())
	})

	t.Run("Unclassified error is hidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		Error(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("dial tcp: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})
}

func TestDecode(t *testing.T) {
	type body struct {
		Code string `json:"code" validate:"required"`
	}
	validate := validator.New()

	t.Run("Valid", func(t *testing.T) {
		var b body
		err := Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"code":"R1"}`)), validate, &b)
		require.NoError(t, err)
		assert.Equal(t, "R1", b.Code)
	})

	t.Run("Malformed", func(t *testing.T) {
		var b body
		err := Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)), validate, &b)
		assert.ErrorIs(t, err, ledger.ErrValidation)
		assert.Contains(t, err.Error(), "invalid request body")
	})

	t.Run("Fails validation", func(t *testing.T) {
		var b body
		err := Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)), validate, &b)
		assert.ErrorIs(t, err, ledger.ErrValidation)
		assert.Contains(t, err.Error(), "Code failed required")
	})

	t.Run("Oversized body", func(t *testing.T) {
		var b body
		payload := `{"code":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
		err := Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload)), validate, &b)
		assert.ErrorIs(t, err, ledger.ErrValidation)
		assert.Contains(t, err.Error(), "request body exceeds")
		assert.Empty(t, b.Code)
	})

	t.Run("No validator", func(t *testing.T) {
		var b body
		assert.NoError(t, Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)), nil, &b))
	})
}
