package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	portsrepo "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/repositories"
)

// mockTx satisfies pgx.Tx by embedding the interface. Its promoted methods
// are never invoked by these tests: the transactional scope only ever
// passes tx through to mocked repository calls, never calls it directly.
type mockTx struct {
	pgx.Tx
}

type MockAssetRepo struct {
	mock.Mock
}

var _ portsrepo.AssetRepositoryFacade = (*MockAssetRepo)(nil)

func (m *MockAssetRepo) FindAssetTypeByID(ctx context.Context, assetTypeID string) (*domain.AssetType, error) {
	args := m.Called(ctx, assetTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetType), args.Error(1)
}

func (m *MockAssetRepo) FindAssetTypeBySymbol(ctx context.Context, symbol string) (*domain.AssetType, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetType), args.Error(1)
}

func (m *MockAssetRepo) ListAssetTypes(ctx context.Context, limit, offset int) ([]domain.AssetType, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AssetType), args.Int(1), args.Error(2)
}

func (m *MockAssetRepo) SaveAssetType(ctx context.Context, assetType domain.AssetType) error {
	args := m.Called(ctx, assetType)
	return args.Error(0)
}

type MockWalletRepo struct {
	mock.Mock
}

var _ portsrepo.WalletRepositoryFacade = (*MockWalletRepo)(nil)

func (m *MockWalletRepo) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepo) FindWalletByOwnerRef(ctx context.Context, ownerRef string) (*domain.Wallet, error) {
	args := m.Called(ctx, ownerRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepo) ListWallets(ctx context.Context, ownerRefPrefix string, limit, offset int) ([]domain.Wallet, int, error) {
	args := m.Called(ctx, ownerRefPrefix, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Wallet), args.Int(1), args.Error(2)
}

func (m *MockWalletRepo) GetBalance(ctx context.Context, walletID, assetTypeID string) (decimal.Decimal, error) {
	args := m.Called(ctx, walletID, assetTypeID)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockWalletRepo) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepo) LockWalletsForUpdate(ctx context.Context, tx pgx.Tx, walletIDs []string) (map[string]domain.Wallet, error) {
	args := m.Called(ctx, tx, walletIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepo) GetBalanceInTx(ctx context.Context, tx pgx.Tx, walletID, assetTypeID string) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, walletID, assetTypeID)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockLedgerRepo struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepo)(nil)

func (m *MockLedgerRepo) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepo) ListEntriesByWallet(ctx context.Context, walletID, assetTypeID string, limit, offset int) ([]domain.EnrichedEntry, int, error) {
	args := m.Called(ctx, walletID, assetTypeID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.EnrichedEntry), args.Int(1), args.Error(2)
}

func (m *MockLedgerRepo) InsertEntryPairInTx(ctx context.Context, tx pgx.Tx, debit, credit domain.LedgerEntry) error {
	args := m.Called(ctx, tx, debit, credit)
	return args.Error(0)
}

type MockTransactionRepo struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepo)(nil)

func (m *MockTransactionRepo) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) InsertTransactionInTx(ctx context.Context, tx pgx.Tx, transaction domain.Transaction) error {
	args := m.Called(ctx, tx, transaction)
	return args.Error(0)
}

type MockIdempotencyRepo struct {
	mock.Mock
}

var _ portsrepo.IdempotencyRepositoryFacade = (*MockIdempotencyRepo)(nil)

func (m *MockIdempotencyRepo) FindByKey(ctx context.Context, key string) (*domain.IdempotencyRecord, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IdempotencyRecord), args.Error(1)
}

func (m *MockIdempotencyRepo) InsertInTx(ctx context.Context, tx pgx.Tx, record domain.IdempotencyRecord) error {
	args := m.Called(ctx, tx, record)
	return args.Error(0)
}

func (m *MockIdempotencyRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
