package services

import (
	"context"

	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferExecutor defines the single write path of the wallet service: the
// three transfer flows (topup, bonus, spend), each idempotent under the
// caller-supplied key on domain.TransferInput (the endpoint tag is recorded
// with the cached outcome but is not compared).
type TransferExecutor interface {
	// Execute runs one transfer flow to completion, or returns the cached
	// outcome of an earlier identical request. TransientConflict errors
	// are retried internally; if every attempt fails that way, the last
	// TransientConflict error is returned.
	Execute(ctx context.Context, input domain.TransferInput) (*domain.TransferOutcome, error)
}

// AssetService defines asset-type registration and lookup.
type AssetService interface {
	CreateAssetType(ctx context.Context, name, symbol, description string) (*domain.AssetType, error)
	ListAssetTypes(ctx context.Context, limit, offset int) ([]domain.AssetType, int, error)
}

// WalletService defines wallet lifecycle and balance lookups.
type WalletService interface {
	CreateWallet(ctx context.Context, ownerRef, label string) (*domain.Wallet, error)
	GetWallet(ctx context.Context, walletID string) (*domain.Wallet, error)
	ListWallets(ctx context.Context, ownerRefPrefix string, limit, offset int) ([]domain.Wallet, int, error)
	GetBalance(ctx context.Context, walletID, assetTypeID string) (domain.Wallet, domain.AssetType, decimal.Decimal, error)
}

// TransactionHistoryService defines read access to a wallet's ledger history.
type TransactionHistoryService interface {
	ListEntriesByWallet(ctx context.Context, walletID, assetTypeID string, limit, offset int) ([]domain.EnrichedEntry, int, error)
}

// TransferSvcFacade combines all wallet-service-related interfaces.
type TransferSvcFacade interface {
	TransferExecutor
	AssetService
	WalletService
	TransactionHistoryService
}
