package services

import (
	"context"
	"time"

	"github.com/rah7202/Dino-Wallet-Service/internal/apperrors"
)

// maxTransferAttempts bounds how many attempts the engine makes at a single
// transfer when attempts fail with a serialization failure or deadlock: the
// first try plus at most two retries.
const maxTransferAttempts = 3

// retryBackoff is the linear backoff between attempts: attempt N waits
// N * retryBackoff before retrying.
const retryBackoff = 100 * time.Millisecond

// withRetry runs fn up to maxTransferAttempts times, retrying only when fn
// fails with a TransientConflict. Any other error, or exhausting the
// attempt budget, returns immediately.
func withRetry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= maxTransferAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !apperrors.IsRetryable(lastErr) {
			return lastErr
		}
		if attempt == maxTransferAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return lastErr
}
