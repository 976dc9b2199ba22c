package pgsql

import (
	"context"
	"sort"

	"github.com/rah7202/Dino-Wallet-Service/internal/apperrors"
	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	portsrepo "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxWalletRepository implements portsrepo.WalletRepositoryFacade using pgxpool.
type PgxWalletRepository struct {
	BaseRepository
}

// NewPgxWalletRepository creates a new PgxWalletRepository.
func NewPgxWalletRepository(db *pgxpool.Pool) *PgxWalletRepository {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

func scanWallet(row scannable) (domain.Wallet, error) {
	var w domain.Wallet
	err := row.Scan(&w.WalletID, &w.OwnerRef, &w.OwnerType, &w.Label, &w.Active, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

// scannable abstracts pgx.Row / pgx.Rows so scanWallet works with either.
type scannable interface {
	Scan(dest ...any) error
}

func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	const query = `
		SELECT wallet_id, owner_ref, owner_type, label, active, created_at, updated_at
		FROM wallets
		WHERE wallet_id = $1;
	`
	w, err := scanWallet(r.Pool.QueryRow(ctx, query, walletID))
	if err != nil {
		return nil, apperrors.FromPgError(err, "wallet not found")
	}
	return &w, nil
}

func (r *PgxWalletRepository) FindWalletByOwnerRef(ctx context.Context, ownerRef string) (*domain.Wallet, error) {
	const query = `
		SELECT wallet_id, owner_ref, owner_type, label, active, created_at, updated_at
		FROM wallets
		WHERE owner_ref = $1;
	`
	w, err := scanWallet(r.Pool.QueryRow(ctx, query, ownerRef))
	if err != nil {
		return nil, apperrors.FromPgError(err, "wallet not found for owner "+ownerRef)
	}
	return &w, nil
}

func (r *PgxWalletRepository) ListWallets(ctx context.Context, ownerRefPrefix string, limit, offset int) ([]domain.Wallet, int, error) {
	const countQuery = `SELECT count(*) FROM wallets WHERE owner_ref LIKE $1;`
	pattern := ownerRefPrefix + "%"
	var total int
	if err := r.Pool.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, apperrors.FromPgError(err, "failed to count wallets")
	}

	const query = `
		SELECT wallet_id, owner_ref, owner_type, label, active, created_at, updated_at
		FROM wallets
		WHERE owner_ref LIKE $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, apperrors.FromPgError(err, "failed to list wallets")
	}
	defer rows.Close()

	wallets := []domain.Wallet{}
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, 0, apperrors.FromPgError(err, "failed to scan wallet")
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.FromPgError(err, "error iterating wallets")
	}
	return wallets, total, nil
}

func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	const query = `
		INSERT INTO wallets (wallet_id, owner_ref, owner_type, label, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		wallet.WalletID, wallet.OwnerRef, wallet.OwnerType, wallet.Label, wallet.Active,
		wallet.CreatedAt, wallet.UpdatedAt,
	)
	if err != nil {
		return apperrors.FromPgError(err, "wallet already exists for owner "+wallet.OwnerRef)
	}
	return nil
}

func (r *PgxWalletRepository) GetBalance(ctx context.Context, walletID, assetTypeID string) (decimal.Decimal, error) {
	return r.balance(ctx, r.Pool, walletID, assetTypeID)
}

func (r *PgxWalletRepository) GetBalanceInTx(ctx context.Context, tx pgx.Tx, walletID, assetTypeID string) (decimal.Decimal, error) {
	return r.balance(ctx, tx, walletID, assetTypeID)
}

// querier abstracts *pgxpool.Pool / pgx.Tx for statements that run either
// standalone or inside the caller's transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PgxWalletRepository) balance(ctx context.Context, q querier, walletID, assetTypeID string) (decimal.Decimal, error) {
	const query = `
		SELECT
			COALESCE(SUM(CASE WHEN direction = 'credit' THEN amount ELSE 0 END), 0)
			- COALESCE(SUM(CASE WHEN direction = 'debit' THEN amount ELSE 0 END), 0)
		FROM ledger_entries
		WHERE wallet_id = $1 AND asset_type_id = $2;
	`
	var balance decimal.Decimal
	if err := q.QueryRow(ctx, query, walletID, assetTypeID).Scan(&balance); err != nil {
		return decimal.Decimal{}, apperrors.FromPgError(err, "failed to compute balance")
	}
	return balance, nil
}

// LockWalletsForUpdate acquires FOR UPDATE row locks on walletIDs in
// ascending lexicographic order. Callers pass a de-duplicated slice in any
// order; this method sorts a copy of it so lock acquisition order can
// never depend on request-supplied ordering, which is what prevents two
// concurrent transfers over the same wallet pair from deadlocking.
func (r *PgxWalletRepository) LockWalletsForUpdate(ctx context.Context, tx pgx.Tx, walletIDs []string) (map[string]domain.Wallet, error) {
	if len(walletIDs) == 0 {
		return map[string]domain.Wallet{}, nil
	}
	sorted := append([]string(nil), walletIDs...)
	sort.Strings(sorted)

	result := make(map[string]domain.Wallet, len(sorted))
	for _, id := range sorted {
		const query = `
			SELECT wallet_id, owner_ref, owner_type, label, active, created_at, updated_at
			FROM wallets
			WHERE wallet_id = $1
			FOR UPDATE;
		`
		w, err := scanWallet(tx.QueryRow(ctx, query, id))
		if err != nil {
			return nil, apperrors.FromPgError(err, "wallet not found: "+id)
		}
		result[id] = w
	}
	return result, nil
}
