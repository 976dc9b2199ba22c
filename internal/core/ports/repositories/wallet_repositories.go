package repositories

import (
	"context"

	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletReader defines read operations for wallet data.
type WalletReader interface {
	// FindWalletByID retrieves a specific wallet by its unique identifier.
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	// FindWalletByOwnerRef retrieves the wallet registered for a given owner
	// reference (used to resolve the fixed system:treasury / system:bonus_pool
	// / system:revenue wallets).
	FindWalletByOwnerRef(ctx context.Context, ownerRef string) (*domain.Wallet, error)

	// ListWallets retrieves a paginated list of wallets, optionally filtered
	// by ownerRef prefix (e.g. "user:").
	ListWallets(ctx context.Context, ownerRefPrefix string, limit, offset int) ([]domain.Wallet, int, error)

	// GetBalance derives a wallet's balance in one asset as the sum of its
	// credit entries minus the sum of its debit entries. Never backed by a
	// stored column.
	GetBalance(ctx context.Context, walletID, assetTypeID string) (decimal.Decimal, error)
}

// WalletWriter defines write operations for wallet data.
type WalletWriter interface {
	// SaveWallet persists a new wallet.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error
}

// WalletTransactionSupport defines wallet operations that must run inside
// the caller's transfer transaction.
type WalletTransactionSupport interface {
	// LockWalletsForUpdate acquires FOR UPDATE row locks on the given wallet
	// IDs in ascending ID order, whatever order the caller supplies them in,
	// so that concurrent transfers over overlapping wallet sets always
	// request locks in the same order. Callers de-duplicate the IDs before
	// calling.
	LockWalletsForUpdate(ctx context.Context, tx pgx.Tx, walletIDs []string) (map[string]domain.Wallet, error)

	// GetBalanceInTx derives a wallet's balance within tx, so that a
	// funds check observes the effect of locks already held in the same
	// transaction.
	GetBalanceInTx(ctx context.Context, tx pgx.Tx, walletID, assetTypeID string) (decimal.Decimal, error)
}

// WalletRepositoryFacade combines all wallet-related repository interfaces.
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
	WalletTransactionSupport
}

// WalletRepositoryWithTx extends WalletRepositoryFacade with transaction capabilities.
type WalletRepositoryWithTx interface {
	WalletRepositoryFacade
	TransactionManager
}
