package pgsql

import (
	"context"

	"github.com/rah7202/Dino-Wallet-Service/internal/apperrors"
	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	portsrepo "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAssetRepository implements portsrepo.AssetRepositoryFacade using pgxpool.
type PgxAssetRepository struct {
	BaseRepository
}

// NewPgxAssetRepository creates a new PgxAssetRepository.
func NewPgxAssetRepository(db *pgxpool.Pool) *PgxAssetRepository {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

func (r *PgxAssetRepository) FindAssetTypeByID(ctx context.Context, assetTypeID string) (*domain.AssetType, error) {
	const query = `
		SELECT asset_type_id, name, symbol, description, active, created_at
		FROM asset_types
		WHERE asset_type_id = $1;
	`
	var a domain.AssetType
	err := r.Pool.QueryRow(ctx, query, assetTypeID).Scan(
		&a.AssetTypeID, &a.Name, &a.Symbol, &a.Description, &a.Active, &a.CreatedAt.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.FromPgError(err, "asset type not found")
	}
	return &a, nil
}

func (r *PgxAssetRepository) FindAssetTypeBySymbol(ctx context.Context, symbol string) (*domain.AssetType, error) {
	const query = `
		SELECT asset_type_id, name, symbol, description, active, created_at
		FROM asset_types
		WHERE symbol = $1;
	`
	var a domain.AssetType
	err := r.Pool.QueryRow(ctx, query, symbol).Scan(
		&a.AssetTypeID, &a.Name, &a.Symbol, &a.Description, &a.Active, &a.CreatedAt.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.FromPgError(err, "asset type not found")
	}
	return &a, nil
}

func (r *PgxAssetRepository) ListAssetTypes(ctx context.Context, limit, offset int) ([]domain.AssetType, int, error) {
	const countQuery = `SELECT count(*) FROM asset_types;`
	var total int
	if err := r.Pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, apperrors.FromPgError(err, "failed to count asset types")
	}

	const query = `
		SELECT asset_type_id, name, symbol, description, active, created_at
		FROM asset_types
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, apperrors.FromPgError(err, "failed to list asset types")
	}
	defer rows.Close()

	assets := []domain.AssetType{}
	for rows.Next() {
		var a domain.AssetType
		if err := rows.Scan(&a.AssetTypeID, &a.Name, &a.Symbol, &a.Description, &a.Active, &a.CreatedAt.CreatedAt); err != nil {
			return nil, 0, apperrors.FromPgError(err, "failed to scan asset type")
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.FromPgError(err, "error iterating asset types")
	}
	return assets, total, nil
}

func (r *PgxAssetRepository) SaveAssetType(ctx context.Context, assetType domain.AssetType) error {
	const query = `
		INSERT INTO asset_types (asset_type_id, name, symbol, description, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		assetType.AssetTypeID, assetType.Name, assetType.Symbol, assetType.Description,
		assetType.Active, assetType.CreatedAt.CreatedAt,
	)
	if err != nil {
		return apperrors.FromPgError(err, "asset symbol already registered")
	}
	return nil
}
