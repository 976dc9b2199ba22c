package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestKindOf_ClassifiesAppErrors(t *testing.T) {
	err := NewConflictError("idempotency key reused")
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestKindOf_DefaultsToInternalForForeignErrors(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestKindOf_UnwrapsWrappedAppErrors(t *testing.T) {
	wrapped := fmt.Errorf("while doing x: %w", NewUnprocessableError("insufficient balance"))
	assert.Equal(t, KindUnprocessable, KindOf(wrapped))
}

func TestAppError_IsMatchesOnKindOnly(t *testing.T) {
	err := NewConflictError("reused with different payload")
	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestAppError_ErrorIncludesCauseWhenPresent(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError("failed to commit", cause)
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)
}

func TestAppError_ErrorOmitsCauseWhenAbsent(t *testing.T) {
	err := NewBadRequestError("amount must be positive")
	assert.NotContains(t, err.Error(), "<nil>")
}

func TestIsRetryable_OnlyTrueForTransientConflict(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"transient conflict", NewTransientConflictError("deadlock detected", nil), true},
		{"conflict", NewConflictError("dup key"), false},
		{"not found", NewNotFoundError("missing"), false},
		{"plain error", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsRetryable(tc.err))
		})
	}
}

func TestFromPgError_NilIsNil(t *testing.T) {
	assert.Nil(t, FromPgError(nil, "whatever"))
}

func TestFromPgError_UnclassifiedDriverErrorIsInternal(t *testing.T) {
	err := FromPgError(errors.New("connection refused"), "insert failed")
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestFromPgError_NoRowsIsNotFound(t *testing.T) {
	err := FromPgError(pgx.ErrNoRows, "wallet not found")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestFromPgError_SQLStateClassification(t *testing.T) {
	cases := []struct {
		code string
		want Kind
	}{
		{sqlstateUniqueViolation, KindConflict},
		{sqlstateForeignKeyViolation, KindBadRequest},
		{sqlstateCheckViolation, KindBadRequest},
		{sqlstateSerializationFailure, KindTransientConflict},
		{sqlstateDeadlockDetected, KindTransientConflict},
		{"99999", KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tc.code}
			got := FromPgError(pgErr, "op failed")
			assert.Equal(t, tc.want, KindOf(got))
		})
	}
}
