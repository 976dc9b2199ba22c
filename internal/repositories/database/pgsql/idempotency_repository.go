package pgsql

import (
	"context"
	"time"

	"github.com/rah7202/Dino-Wallet-Service/internal/apperrors"
	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	portsrepo "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxIdempotencyRepository implements portsrepo.IdempotencyRepositoryFacade using pgxpool.
type PgxIdempotencyRepository struct {
	BaseRepository
}

// NewPgxIdempotencyRepository creates a new PgxIdempotencyRepository.
func NewPgxIdempotencyRepository(db *pgxpool.Pool) *PgxIdempotencyRepository {
	return &PgxIdempotencyRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.IdempotencyRepositoryFacade = (*PgxIdempotencyRepository)(nil)

func (r *PgxIdempotencyRepository) FindByKey(ctx context.Context, key string) (*domain.IdempotencyRecord, error) {
	const query = `
		SELECT key, endpoint, request_hash, response_status, response_body, transaction_id, expires_at, created_at
		FROM idempotency_keys
		WHERE key = $1;
	`
	var rec domain.IdempotencyRecord
	var transactionID *string
	err := r.Pool.QueryRow(ctx, query, key).Scan(
		&rec.Key, &rec.Endpoint, &rec.RequestHash, &rec.ResponseStatus, &rec.ResponseBody,
		&transactionID, &rec.ExpiresAt, &rec.CreatedAt.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.FromPgError(err, "idempotency record not found")
	}
	if transactionID != nil {
		rec.TransactionID = *transactionID
	}
	return &rec, nil
}

func (r *PgxIdempotencyRepository) InsertInTx(ctx context.Context, tx pgx.Tx, record domain.IdempotencyRecord) error {
	const query = `
		INSERT INTO idempotency_keys (key, endpoint, request_hash, response_status, response_body, transaction_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		record.Key, record.Endpoint, record.RequestHash, record.ResponseStatus, record.ResponseBody,
		record.TransactionID, record.ExpiresAt, record.CreatedAt.CreatedAt,
	)
	if err != nil {
		return apperrors.FromPgError(err, "idempotency key already reserved")
	}
	return nil
}

func (r *PgxIdempotencyRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM idempotency_keys WHERE expires_at <= $1;`
	tag, err := r.Pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, apperrors.FromPgError(err, "failed to delete expired idempotency keys")
	}
	return tag.RowsAffected(), nil
}
