// Package respond holds the JSON encoding and error translation shared by the HTTP handlers.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/chris/referral-ledger/pkg/api"
	"github.com/chris/referral-ledger/pkg/ledger"
	"github.com/go-playground/validator/v10"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind ledger.Kind) int {
	switch kind {
	case ledger.KindValidation:
		return http.StatusBadRequest
	case ledger.KindUnauthorized:
		return http.StatusUnauthorized
	case ledger.KindNotFound:
		return http.StatusNotFound
	case ledger.KindInvalidState:
		return http.StatusConflict
	case ledger.KindInsufficientBalance:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as {"kind","message"}. Storage failures are logged and their detail withheld.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	kind := ledger.KindOf(err)
	status := StatusFor(kind)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		msg = "internal error"
	}
	JSON(w, status, api.ErrorResponse{Kind: string(kind), Message: msg})
}

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 1 << 20

// Decode reads a JSON body of at most MaxBodyBytes into v and runs struct validation when
// validate is set.
func Decode(r *http.Request, validate *validator.Validate, v any) error {
	body := http.MaxBytesReader(nil, r.Body, MaxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ledger.Validation("request body exceeds %d bytes", tooLarge.Limit)
		}
		return ledger.Validation("invalid request body: %v", err)
	}
	if validate == nil {
		return nil
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return ledger.Validation("%s", describe(verrs))
		}
		return ledger.Validation("invalid request: %v", err)
	}
	return nil
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return "invalid request: " + strings.Join(parts, ", ")
}
