package dto

import (
	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest defines the data needed to open a new wallet.
type CreateWalletRequest struct {
	OwnerRef string `json:"ownerRef" binding:"required"`
	Label    string `json:"label"`
}

// WalletResponse defines the data returned for a wallet.
type WalletResponse struct {
	WalletID  string `json:"walletID"`
	OwnerRef  string `json:"ownerRef"`
	OwnerType string `json:"ownerType"`
	Label     string `json:"label"`
	Active    bool   `json:"active"`
}

// ListWalletsParams defines query parameters for listing wallets.
type ListWalletsParams struct {
	OwnerRefPrefix string `form:"ownerRefPrefix"`
	Limit          int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset         int    `form:"offset,default=0" binding:"min=0"`
}

// ListWalletsResponse wraps a page of wallets.
type ListWalletsResponse struct {
	Wallets []WalletResponse `json:"wallets"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// BalanceResponse defines the data returned for a getBalance query.
type BalanceResponse struct {
	WalletID    string          `json:"walletID"`
	AssetTypeID string          `json:"assetTypeID"`
	AssetSymbol string          `json:"assetSymbol"`
	Balance     decimal.Decimal `json:"balance"`
}

// ToWalletResponse converts a domain.Wallet to its DTO.
func ToWalletResponse(w domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:  w.WalletID,
		OwnerRef:  w.OwnerRef,
		OwnerType: string(w.OwnerType),
		Label:     w.Label,
		Active:    w.Active,
	}
}

// ToWalletResponses converts a slice of domain.Wallet to its DTO slice.
func ToWalletResponses(wallets []domain.Wallet) []WalletResponse {
	res := make([]WalletResponse, len(wallets))
	for i, w := range wallets {
		res[i] = ToWalletResponse(w)
	}
	return res
}
