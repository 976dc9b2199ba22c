package repositories

import (
	"context"

	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
)

// AssetReader defines read operations for asset type data.
type AssetReader interface {
	// FindAssetTypeByID retrieves a specific asset type by its unique identifier.
	FindAssetTypeByID(ctx context.Context, assetTypeID string) (*domain.AssetType, error)

	// FindAssetTypeBySymbol retrieves a specific asset type by its unique symbol.
	FindAssetTypeBySymbol(ctx context.Context, symbol string) (*domain.AssetType, error)

	// ListAssetTypes retrieves a paginated list of asset types.
	ListAssetTypes(ctx context.Context, limit, offset int) ([]domain.AssetType, int, error)
}

// AssetWriter defines write operations for asset type data.
type AssetWriter interface {
	// SaveAssetType persists a new asset type.
	SaveAssetType(ctx context.Context, assetType domain.AssetType) error
}

// AssetRepositoryFacade combines all asset-type-related repository interfaces.
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}

// AssetRepositoryWithTx extends AssetRepositoryFacade with transaction capabilities.
type AssetRepositoryWithTx interface {
	AssetRepositoryFacade
	TransactionManager
}
