package apperrors

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes the repository layer distinguishes between.
const (
	sqlstateUniqueViolation      = "23505"
	sqlstateForeignKeyViolation  = "23503"
	sqlstateCheckViolation       = "23514"
	sqlstateSerializationFailure = "40001"
	sqlstateDeadlockDetected     = "40P01"
)

// FromPgError classifies a database driver error into an AppError. msg is
// used as the message for the common cases; callers that need a more
// specific message (e.g. naming which unique constraint fired) should
// inspect the returned Kind and build their own AppError instead.
func FromPgError(err error, msg string) *AppError {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NewNotFoundError(msg)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(msg, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateUniqueViolation:
			return NewConflictError(msg)
		case sqlstateForeignKeyViolation:
			return NewBadRequestError(msg)
		case sqlstateCheckViolation:
			return NewBadRequestError(msg)
		case sqlstateSerializationFailure, sqlstateDeadlockDetected:
			return NewTransientConflictError(msg, err)
		}
	}
	return NewInternalError(msg, err)
}

// IsRetryable reports whether err represents a transient condition the
// caller may retry (spec.md §4.6: up to 3 attempts with linear backoff).
func IsRetryable(err error) bool {
	return KindOf(err) == KindTransientConflict
}
