package ledger

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{Validation("amount %s", "missing"), KindValidation},
		{Unauthorized("nope"), KindUnauthorized},
		{NotFound("gone"), KindNotFound},
		{InvalidState("paid"), KindInvalidState},
		{InsufficientBalance("%d > %d", 2, 1), KindInsufficientBalance},
		{Storage("put", errors.New("timeout")), KindStorage},
		{fmt.Errorf("handler: %w", NotFound("wrapped")), KindNotFound},
		{errors.New("unclassified"), KindStorage},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, KindOf(tc.err), tc.err.Error())
	}
}

func TestStorageKeepsCause(t *testing.T) {
	cause := errors.New("throttled")
	err := Storage("query", cause)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "storage error: query: throttled", err.Error())
}
