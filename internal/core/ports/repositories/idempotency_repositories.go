package repositories

import (
	"context"
	"time"

	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// IdempotencyReader defines read operations over cached write outcomes.
type IdempotencyReader interface {
	// FindByKey retrieves a stored idempotency record by its key, outside
	// of any transaction. Used for the optimistic pre-check before a
	// transfer engine run begins its transaction.
	FindByKey(ctx context.Context, key string) (*domain.IdempotencyRecord, error)
}

// IdempotencyWriter defines write operations over cached write outcomes.
type IdempotencyWriter interface {
	// InsertInTx writes a new idempotency record within tx. A unique
	// violation on key means another request already reserved or
	// completed it; it is returned as a KindConflict error, and the caller
	// re-checks FindByKey to decide cache-hit vs conflict.
	InsertInTx(ctx context.Context, tx pgx.Tx, record domain.IdempotencyRecord) error

	// DeleteExpired removes records whose ExpiresAt has passed. Used by the
	// reaper collaborator, never by the transfer engine itself.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// IdempotencyRepositoryFacade combines all idempotency-related repository interfaces.
type IdempotencyRepositoryFacade interface {
	IdempotencyReader
	IdempotencyWriter
}
