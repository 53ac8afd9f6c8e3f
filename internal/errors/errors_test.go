package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/rcatalasan0/491-Project/internal/errors"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind autherror.Kind
	}{
		{name: "validation", err: autherror.Validation("bad input"), kind: autherror.KindValidation},
		{name: "conflict", err: autherror.ErrAccountExists, kind: autherror.KindConflict},
		{name: "authentication", err: autherror.ErrInvalidCredentials, kind: autherror.KindAuthentication},
		{name: "rate limited", err: autherror.ErrTooManyLoginAttempts, kind: autherror.KindRateLimited},
		{name: "not found", err: autherror.ErrTickerNotFound, kind: autherror.KindNotFound},
		{name: "store unavailable", err: autherror.StoreUnavailable(errors.New("down")), kind: autherror.KindStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := autherror.KindOf(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}

	t.Run("plain error carries no kind", func(t *testing.T) {
		_, ok := autherror.KindOf(errors.New("boom"))
		assert.False(t, ok)
	})

	t.Run("wrapped error keeps its kind", func(t *testing.T) {
		wrapped := fmt.Errorf("login: %w", autherror.ErrInvalidCredentials)
		kind, ok := autherror.KindOf(wrapped)
		require.True(t, ok)
		assert.Equal(t, autherror.KindAuthentication, kind)
	})
}

func TestStoreUnavailable(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:5432: connection refused")
	err := autherror.StoreUnavailable(cause)

	// The cause is reachable for logging but never leaks into the message.
	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Error(), "connection refused")
}
