package pgsql

import (
	"context"

	"github.com/rah7202/Dino-Wallet-Service/internal/apperrors"
	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	portsrepo "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade using pgxpool.
type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a new PgxTransactionRepository.
func NewPgxTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	const query = `
		SELECT transaction_id, type, reference, initiated_by, metadata, created_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var t domain.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&t.TransactionID, &t.Type, &t.Reference, &t.InitiatedBy, &t.Metadata, &t.CreatedAt.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.FromPgError(err, "transaction not found")
	}
	return &t, nil
}

func (r *PgxTransactionRepository) InsertTransactionInTx(ctx context.Context, tx pgx.Tx, transaction domain.Transaction) error {
	const query = `
		INSERT INTO transactions (transaction_id, type, reference, initiated_by, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, query,
		transaction.TransactionID, transaction.Type, transaction.Reference, transaction.InitiatedBy,
		transaction.Metadata, transaction.CreatedAt.CreatedAt,
	)
	if err != nil {
		return apperrors.FromPgError(err, "failed to insert transaction")
	}
	return nil
}
