package pgsql

import (
	"context"

	"github.com/rah7202/Dino-Wallet-Service/internal/apperrors"
	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	portsrepo "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade using pgxpool.
type PgxLedgerRepository struct {
	BaseRepository
}

// NewPgxLedgerRepository creates a new PgxLedgerRepository.
func NewPgxLedgerRepository(db *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func (r *PgxLedgerRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.LedgerEntry, error) {
	const query = `
		SELECT entry_id, transaction_id, wallet_id, asset_type_id, direction, amount, created_at
		FROM ledger_entries
		WHERE transaction_id = $1
		ORDER BY direction;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.FromPgError(err, "failed to query ledger entries")
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.EntryID, &e.TransactionID, &e.WalletID, &e.AssetTypeID, &e.Direction, &e.Amount, &e.CreatedAt.CreatedAt); err != nil {
			return nil, apperrors.FromPgError(err, "failed to scan ledger entry")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.FromPgError(err, "error iterating ledger entries")
	}
	return entries, nil
}

func (r *PgxLedgerRepository) ListEntriesByWallet(ctx context.Context, walletID, assetTypeID string, limit, offset int) ([]domain.EnrichedEntry, int, error) {
	countQuery := `
		SELECT count(*)
		FROM ledger_entries le
		WHERE le.wallet_id = $1 AND ($2 = '' OR le.asset_type_id = $2);
	`
	var total int
	if err := r.Pool.QueryRow(ctx, countQuery, walletID, assetTypeID).Scan(&total); err != nil {
		return nil, 0, apperrors.FromPgError(err, "failed to count ledger entries")
	}

	query := `
		SELECT
			le.entry_id, le.transaction_id, le.wallet_id, le.asset_type_id, le.direction, le.amount, le.created_at,
			at.symbol, t.type, t.reference
		FROM ledger_entries le
		JOIN asset_types at ON at.asset_type_id = le.asset_type_id
		JOIN transactions t ON t.transaction_id = le.transaction_id
		WHERE le.wallet_id = $1 AND ($2 = '' OR le.asset_type_id = $2)
		ORDER BY le.created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, walletID, assetTypeID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.FromPgError(err, "failed to list ledger entries")
	}
	defer rows.Close()

	entries := []domain.EnrichedEntry{}
	for rows.Next() {
		var e domain.EnrichedEntry
		if err := rows.Scan(
			&e.EntryID, &e.TransactionID, &e.WalletID, &e.AssetTypeID, &e.Direction, &e.Amount, &e.CreatedAt.CreatedAt,
			&e.AssetSymbol, &e.TransactionType, &e.TransactionRef,
		); err != nil {
			return nil, 0, apperrors.FromPgError(err, "failed to scan ledger entry")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.FromPgError(err, "error iterating ledger entries")
	}
	return entries, total, nil
}

func (r *PgxLedgerRepository) InsertEntryPairInTx(ctx context.Context, tx pgx.Tx, debit, credit domain.LedgerEntry) error {
	batch := &pgx.Batch{}
	const insert = `
		INSERT INTO ledger_entries (entry_id, transaction_id, wallet_id, asset_type_id, direction, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch.Queue(insert, debit.EntryID, debit.TransactionID, debit.WalletID, debit.AssetTypeID, debit.Direction, debit.Amount, debit.CreatedAt.CreatedAt)
	batch.Queue(insert, credit.EntryID, credit.TransactionID, credit.WalletID, credit.AssetTypeID, credit.Direction, credit.Amount, credit.CreatedAt.CreatedAt)

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return apperrors.FromPgError(err, "failed to insert ledger entry pair")
		}
	}
	return nil
}
