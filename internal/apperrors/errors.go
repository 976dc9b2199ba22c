// Package apperrors defines the error taxonomy shared by the core,
// repository, and transport layers. A repository never returns a raw
// pgx/pgconn error to its caller: it classifies first (see pgerror.go)
// and returns an *AppError of one of the Kinds below.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind is the closed set of error categories the transfer engine and its
// transport can produce. Handlers switch on Kind to pick an HTTP status;
// nothing above the repository boundary should need to know about SQLSTATEs.
type Kind string

const (
	KindBadRequest       Kind = "bad_request"       // malformed or missing input
	KindNotFound         Kind = "not_found"         // referenced entity does not exist
	KindConflict         Kind = "conflict"          // idempotency key reused with a different payload, or a unique violation
	KindUnprocessable    Kind = "unprocessable"     // well-formed but violates a business rule (e.g. insufficient funds)
	KindTransientConflict Kind = "transient_conflict" // serialization failure or deadlock; safe to retry
	KindTimeout          Kind = "timeout"           // the operation did not complete within its deadline
	KindInternal         Kind = "internal"          // anything else; a bug or an infrastructure failure
)

// AppError carries a Kind alongside a human-readable message and, when
// wrapping an infrastructure failure, the underlying cause.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, apperrors.KindConflict-typed sentinel) style checks
// work when only the Kind matters, by comparing against another *AppError.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

func newErr(kind Kind, msg string, cause error) *AppError {
	return &AppError{Kind: kind, Message: msg, Cause: cause}
}

func NewBadRequestError(msg string) *AppError        { return newErr(KindBadRequest, msg, nil) }
func NewNotFoundError(msg string) *AppError           { return newErr(KindNotFound, msg, nil) }
func NewConflictError(msg string) *AppError           { return newErr(KindConflict, msg, nil) }
func NewUnprocessableError(msg string) *AppError      { return newErr(KindUnprocessable, msg, nil) }
func NewTransientConflictError(msg string, cause error) *AppError {
	return newErr(KindTransientConflict, msg, cause)
}
func NewTimeoutError(msg string, cause error) *AppError { return newErr(KindTimeout, msg, cause) }
func NewInternalError(msg string, cause error) *AppError {
	return newErr(KindInternal, msg, cause)
}

// Sentinel Kind markers usable with errors.Is via AppError.Is.
var (
	ErrNotFound          = &AppError{Kind: KindNotFound}
	ErrBadRequest        = &AppError{Kind: KindBadRequest}
	ErrConflict          = &AppError{Kind: KindConflict}
	ErrUnprocessable     = &AppError{Kind: KindUnprocessable}
	ErrTransientConflict = &AppError{Kind: KindTransientConflict}
	ErrTimeout           = &AppError{Kind: KindTimeout}
	ErrInternal          = &AppError{Kind: KindInternal}
)

// KindOf extracts the Kind of err, defaulting to KindInternal for errors
// that never went through an AppError constructor.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
