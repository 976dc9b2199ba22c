package pgsql

import (
	portsrepo "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgxpool-backed repository into a single
// portsrepo.RepositoryProvider for injection into the service container.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	assetRepo := NewPgxAssetRepository(dbPool)
	walletRepo := NewPgxWalletRepository(dbPool)
	ledgerRepo := NewPgxLedgerRepository(dbPool)
	transactionRepo := NewPgxTransactionRepository(dbPool)
	idempotencyRepo := NewPgxIdempotencyRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AssetRepo:       assetRepo,
		WalletRepo:      walletRepo,
		LedgerRepo:      ledgerRepo,
		TransactionRepo: transactionRepo,
		IdempotencyRepo: idempotencyRepo,
		TxManager:       &BaseRepository{Pool: dbPool},
	}
}
