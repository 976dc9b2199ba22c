package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rah7202/Dino-Wallet-Service/internal/apperrors"
)

func TestWithRetry_ReturnsImmediatelyOnSuccess(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_DoesNotRetryNonTransientErrors(t *testing.T) {
	calls := 0
	sentinel := apperrors.NewUnprocessableError("insufficient balance")
	err := withRetry(context.Background(), func() error {
		calls++
		return sentinel
	})
	assert.Same(t, sentinel, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_RetriesTransientConflictUpToMaxAttempts(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		return apperrors.NewTransientConflictError("deadlock detected", nil)
	})
	assert.Error(t, err)
	assert.Equal(t, maxTransferAttempts, calls)
}

func TestWithRetry_SucceedsAfterTransientRetries(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		if calls < maxTransferAttempts {
			return apperrors.NewTransientConflictError("deadlock detected", nil)
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, maxTransferAttempts, calls)
}

func TestWithRetry_AbortsOnContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := withRetry(ctx, func() error {
		calls++
		return apperrors.NewTransientConflictError("deadlock detected", nil)
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled) || apperrors.IsRetryable(err))
}
