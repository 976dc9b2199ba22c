package dto

import (
	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListEntriesParams defines query parameters for a wallet's transaction history.
type ListEntriesParams struct {
	AssetTypeID string `form:"assetTypeID"`
	Limit       int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset      int    `form:"offset,default=0" binding:"min=0"`
}

// EntryResponse defines the data returned for one ledger entry in a
// wallet's history, joined with display-only transaction context.
type EntryResponse struct {
	EntryID         string          `json:"entryID"`
	TransactionID   string          `json:"transactionID"`
	WalletID        string          `json:"walletID"`
	AssetTypeID     string          `json:"assetTypeID"`
	AssetSymbol     string          `json:"assetSymbol"`
	Direction       string          `json:"direction"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	TransactionRef  string          `json:"transactionReference"`
	CreatedAt       string          `json:"createdAt"`
}

// ListEntriesResponse wraps a page of a wallet's ledger history.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

// ToEntryResponse converts a domain.EnrichedEntry to its DTO.
func ToEntryResponse(e domain.EnrichedEntry) EntryResponse {
	return EntryResponse{
		EntryID:         e.EntryID,
		TransactionID:   e.TransactionID,
		WalletID:        e.WalletID,
		AssetTypeID:     e.AssetTypeID,
		AssetSymbol:     e.AssetSymbol,
		Direction:       string(e.Direction),
		Amount:          e.Amount,
		TransactionType: e.TransactionType,
		TransactionRef:  e.TransactionRef,
		CreatedAt:       e.CreatedAt.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToEntryResponses converts a slice of domain.EnrichedEntry to its DTO slice.
func ToEntryResponses(entries []domain.EnrichedEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(e)
	}
	return res
}
