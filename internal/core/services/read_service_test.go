package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rah7202/Dino-Wallet-Service/internal/apperrors"
	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	portsrepo "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/repositories"
)

type ReadServiceTestSuite struct {
	suite.Suite
	assetRepo  *MockAssetRepo
	walletRepo *MockWalletRepo
	ledgerRepo *MockLedgerRepo
	svc        *ReadService
}

func (suite *ReadServiceTestSuite) SetupTest() {
	suite.assetRepo = new(MockAssetRepo)
	suite.walletRepo = new(MockWalletRepo)
	suite.ledgerRepo = new(MockLedgerRepo)
	suite.svc = NewReadService(portsrepo.RepositoryProvider{
		AssetRepo:  suite.assetRepo,
		WalletRepo: suite.walletRepo,
		LedgerRepo: suite.ledgerRepo,
	})
}

func (suite *ReadServiceTestSuite) TestCreateAssetType_RejectsMissingSymbol() {
	asset, err := suite.svc.CreateAssetType(context.Background(), "Gold", "", "")
	suite.Nil(asset)
	suite.Require().Error(err)
	suite.Equal(apperrors.KindBadRequest, apperrors.KindOf(err))
}

func (suite *ReadServiceTestSuite) TestCreateAssetType_SavesAndReturnsActiveAsset() {
	suite.assetRepo.On("SaveAssetType", mock.Anything, mock.MatchedBy(func(a domain.AssetType) bool {
		return a.Symbol == "GLD" && a.Active && a.AssetTypeID != ""
	})).Return(nil).Once()

	asset, err := suite.svc.CreateAssetType(context.Background(), "Gold", "GLD", "shiny")
	suite.Require().NoError(err)
	suite.Equal("GLD", asset.Symbol)
	suite.True(asset.Active)
}

func (suite *ReadServiceTestSuite) TestCreateWallet_RejectsMissingOwnerRef() {
	wallet, err := suite.svc.CreateWallet(context.Background(), "", "label")
	suite.Nil(wallet)
	suite.Require().Error(err)
	suite.Equal(apperrors.KindBadRequest, apperrors.KindOf(err))
}

func (suite *ReadServiceTestSuite) TestCreateWallet_ClassifiesSystemOwnerRefs() {
	suite.walletRepo.On("SaveWallet", mock.Anything, mock.MatchedBy(func(w domain.Wallet) bool {
		return w.OwnerType == domain.OwnerSystem
	})).Return(nil).Once()

	wallet, err := suite.svc.CreateWallet(context.Background(), domain.SystemTreasury, "Treasury")
	suite.Require().NoError(err)
	suite.Equal(domain.OwnerSystem, wallet.OwnerType)
}

func (suite *ReadServiceTestSuite) TestCreateWallet_ClassifiesUserOwnerRefs() {
	suite.walletRepo.On("SaveWallet", mock.Anything, mock.MatchedBy(func(w domain.Wallet) bool {
		return w.OwnerType == domain.OwnerUser
	})).Return(nil).Once()

	wallet, err := suite.svc.CreateWallet(context.Background(), "user:alice", "Alice")
	suite.Require().NoError(err)
	suite.Equal(domain.OwnerUser, wallet.OwnerType)
}

func (suite *ReadServiceTestSuite) TestListAssetTypes_ClampsPagination() {
	suite.assetRepo.On("ListAssetTypes", mock.Anything, 20, 0).Return([]domain.AssetType{}, 0, nil).Once()
	_, _, err := suite.svc.ListAssetTypes(context.Background(), 0, -5)
	suite.Require().NoError(err)

	suite.assetRepo.On("ListAssetTypes", mock.Anything, 100, 5).Return([]domain.AssetType{}, 0, nil).Once()
	_, _, err = suite.svc.ListAssetTypes(context.Background(), 500, 5)
	suite.Require().NoError(err)
}

func (suite *ReadServiceTestSuite) TestGetBalance_PropagatesWalletNotFound() {
	suite.walletRepo.On("FindWalletByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("wallet not found")).Once()

	_, _, _, err := suite.svc.GetBalance(context.Background(), "missing", "asset-gld")
	suite.Require().Error(err)
	suite.Equal(apperrors.KindNotFound, apperrors.KindOf(err))
	suite.assetRepo.AssertNotCalled(suite.T(), "FindAssetTypeByID", mock.Anything, mock.Anything)
}

func (suite *ReadServiceTestSuite) TestGetBalance_ReturnsDerivedBalance() {
	wallet := &domain.Wallet{WalletID: "wallet-alice", Active: true}
	asset := &domain.AssetType{AssetTypeID: "asset-gld", Symbol: "GLD", Active: true}
	suite.walletRepo.On("FindWalletByID", mock.Anything, "wallet-alice").Return(wallet, nil).Once()
	suite.assetRepo.On("FindAssetTypeByID", mock.Anything, "asset-gld").Return(asset, nil).Once()
	suite.walletRepo.On("GetBalance", mock.Anything, "wallet-alice", "asset-gld").
		Return(decimal.RequireFromString("42.50000000"), nil).Once()

	gotWallet, gotAsset, balance, err := suite.svc.GetBalance(context.Background(), "wallet-alice", "asset-gld")
	suite.Require().NoError(err)
	suite.Equal("wallet-alice", gotWallet.WalletID)
	suite.Equal("GLD", gotAsset.Symbol)
	suite.True(decimal.RequireFromString("42.50000000").Equal(balance))
}

func (suite *ReadServiceTestSuite) TestListEntriesByWallet_ChecksWalletExistsFirst() {
	suite.walletRepo.On("FindWalletByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("wallet not found")).Once()

	_, _, err := suite.svc.ListEntriesByWallet(context.Background(), "missing", "asset-gld", 20, 0)
	suite.Require().Error(err)
	suite.ledgerRepo.AssertNotCalled(suite.T(), "ListEntriesByWallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReadService(t *testing.T) {
	suite.Run(t, new(ReadServiceTestSuite))
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		name               string
		limit, offset      int
		wantLimit, wantOff int
	}{
		{"defaults when zero", 0, 0, 20, 0},
		{"clamps negative limit", -1, 0, 20, 0},
		{"clamps over-max limit", 500, 0, 100, 0},
		{"clamps negative offset", 20, -10, 20, 0},
		{"passes through valid values", 50, 30, 50, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotLimit, gotOffset := clampPage(tc.limit, tc.offset)
			if gotLimit != tc.wantLimit || gotOffset != tc.wantOff {
				t.Fatalf("clampPage(%d, %d) = (%d, %d), want (%d, %d)",
					tc.limit, tc.offset, gotLimit, gotOffset, tc.wantLimit, tc.wantOff)
			}
		})
	}
}

func TestIsSystemRef(t *testing.T) {
	for _, ref := range []string{domain.SystemTreasury, domain.SystemBonusPool, domain.SystemRevenue} {
		if !isSystemRef(ref) {
			t.Fatalf("expected %q to be classified as a system ref", ref)
		}
	}
	if isSystemRef("user:alice") {
		t.Fatal("expected user:alice not to be classified as a system ref")
	}
}
