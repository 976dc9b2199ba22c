package services

import (
	"context"

	"github.com/rah7202/Dino-Wallet-Service/internal/apperrors"
	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	"github.com/rah7202/Dino-Wallet-Service/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReadService implements the wallet service's non-transfer operations:
// asset/wallet registration and lookup, balance snapshots, and ledger
// history. Its reads are non-locking, read-committed snapshots — never
// used to gate a transfer decision, which is TransferEngine's job.
type ReadService struct {
	repos repositories.RepositoryProvider
}

// NewReadService builds a ReadService over its repository collaborators.
func NewReadService(repos repositories.RepositoryProvider) *ReadService {
	return &ReadService{repos: repos}
}

func (s *ReadService) CreateAssetType(ctx context.Context, name, symbol, description string) (*domain.AssetType, error) {
	if name == "" || symbol == "" {
		return nil, apperrors.NewBadRequestError("name and symbol are required")
	}
	asset := domain.AssetType{
		AssetTypeID: uuid.NewString(),
		Name:        name,
		Symbol:      symbol,
		Description: description,
		Active:      true,
		CreatedAt:   domain.CreatedAt{CreatedAt: now()},
	}
	if err := s.repos.AssetRepo.SaveAssetType(ctx, asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (s *ReadService) ListAssetTypes(ctx context.Context, limit, offset int) ([]domain.AssetType, int, error) {
	limit, offset = clampPage(limit, offset)
	return s.repos.AssetRepo.ListAssetTypes(ctx, limit, offset)
}

func (s *ReadService) CreateWallet(ctx context.Context, ownerRef, label string) (*domain.Wallet, error) {
	if ownerRef == "" {
		return nil, apperrors.NewBadRequestError("ownerRef is required")
	}
	ownerType := domain.OwnerUser
	if isSystemRef(ownerRef) {
		ownerType = domain.OwnerSystem
	}
	createdAt := now()
	wallet := domain.Wallet{
		WalletID:  uuid.NewString(),
		OwnerRef:  ownerRef,
		OwnerType: ownerType,
		Label:     label,
		Active:    true,
		Timestamps: domain.Timestamps{
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
	}
	if err := s.repos.WalletRepo.SaveWallet(ctx, wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (s *ReadService) GetWallet(ctx context.Context, walletID string) (*domain.Wallet, error) {
	return s.repos.WalletRepo.FindWalletByID(ctx, walletID)
}

func (s *ReadService) ListWallets(ctx context.Context, ownerRefPrefix string, limit, offset int) ([]domain.Wallet, int, error) {
	limit, offset = clampPage(limit, offset)
	return s.repos.WalletRepo.ListWallets(ctx, ownerRefPrefix, limit, offset)
}

func (s *ReadService) GetBalance(ctx context.Context, walletID, assetTypeID string) (domain.Wallet, domain.AssetType, decimal.Decimal, error) {
	wallet, err := s.repos.WalletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		return domain.Wallet{}, domain.AssetType{}, decimal.Decimal{}, err
	}
	asset, err := s.repos.AssetRepo.FindAssetTypeByID(ctx, assetTypeID)
	if err != nil {
		return domain.Wallet{}, domain.AssetType{}, decimal.Decimal{}, err
	}
	balance, err := s.repos.WalletRepo.GetBalance(ctx, walletID, assetTypeID)
	if err != nil {
		return domain.Wallet{}, domain.AssetType{}, decimal.Decimal{}, err
	}
	return *wallet, *asset, balance, nil
}

func (s *ReadService) ListEntriesByWallet(ctx context.Context, walletID, assetTypeID string, limit, offset int) ([]domain.EnrichedEntry, int, error) {
	limit, offset = clampPage(limit, offset)
	if _, err := s.repos.WalletRepo.FindWalletByID(ctx, walletID); err != nil {
		return nil, 0, err
	}
	return s.repos.LedgerRepo.ListEntriesByWallet(ctx, walletID, assetTypeID, limit, offset)
}

// clampPage enforces spec.md §8's boundary rule: limit clamped to [1,100]
// (default 20), offset clamped to >= 0.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func isSystemRef(ownerRef string) bool {
	switch ownerRef {
	case domain.SystemTreasury, domain.SystemBonusPool, domain.SystemRevenue:
		return true
	default:
		return false
	}
}
