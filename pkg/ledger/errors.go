package ledger

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to callers. Every error returned by the ledger and the partner
// directory wraps exactly one of these.
var (
	ErrValidation          = errors.New("validation error")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInvalidState        = errors.New("invalid state")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrStorage             = errors.New("storage error")
)

// Kind is the stable, machine-readable name of an error class.
type Kind string

const (
	KindValidation          Kind = "validation"
	KindUnauthorized        Kind = "unauthorized"
	KindNotFound            Kind = "not_found"
	KindInvalidState        Kind = "invalid_state"
	KindInsufficientBalance Kind = "insufficient_balance"
	KindStorage             Kind = "storage"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrValidation, KindValidation},
	{ErrUnauthorized, KindUnauthorized},
	{ErrNotFound, KindNotFound},
	{ErrInvalidState, KindInvalidState},
	{ErrInsufficientBalance, KindInsufficientBalance},
	{ErrStorage, KindStorage},
}

// KindOf classifies err. Unclassified errors are reported as storage failures.
func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindStorage
}

// Validation builds an ErrValidation with a formatted message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Unauthorized(msg string) error { return fmt.Errorf("%w: %s", ErrUnauthorized, msg) }

func NotFound(msg string) error { return fmt.Errorf("%w: %s", ErrNotFound, msg) }

func InvalidState(msg string) error { return fmt.Errorf("%w: %s", ErrInvalidState, msg) }

// Storage wraps a persistence failure for operation op, keeping the cause in the chain.
func Storage(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// InsufficientBalance builds an ErrInsufficientBalance with a formatted message.
func InsufficientBalance(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInsufficientBalance, fmt.Sprintf(format, args...))
}
