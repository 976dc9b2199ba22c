package dto

import (
	"encoding/json"

	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest defines the body shared by the topup, bonus, and spend
// endpoints. The flow itself is fixed by the route, not by a field on the
// body, so it does not appear here.
type TransferRequest struct {
	WalletID    string          `json:"walletID" binding:"required"`
	AssetTypeID string          `json:"assetTypeID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Reference   string          `json:"reference" binding:"required"`
	InitiatedBy string          `json:"initiatedBy"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}

// TransferResponse is the response body for a successful transfer, whether
// it executed the write or replayed an idempotent cache hit.
type TransferResponse struct {
	Data      TransactionResponse `json:"data"`
	FromCache bool                `json:"fromCache"`
}

// TransactionResponse defines the data returned for a completed transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Type          string          `json:"type"`
	Reference     string          `json:"reference"`
	AssetTypeID   string          `json:"assetTypeID"`
	AssetSymbol   string          `json:"assetSymbol"`
	Amount        decimal.Decimal `json:"amount"`
	FromWalletID  string          `json:"fromWalletID"`
	ToWalletID    string          `json:"toWalletID"`
	CreatedAt     string          `json:"createdAt"`
}

// ToTransferResponse converts a domain.TransferOutcome into its wire response.
func ToTransferResponse(o domain.TransferOutcome) TransferResponse {
	r := o.Result
	return TransferResponse{
		Data: TransactionResponse{
			TransactionID: r.TransactionID,
			Type:          string(r.Type),
			Reference:     r.Reference,
			AssetTypeID:   r.AssetTypeID,
			AssetSymbol:   r.AssetSymbol,
			Amount:        r.Amount,
			FromWalletID:  r.FromWalletID,
			ToWalletID:    r.ToWalletID,
			CreatedAt:     r.CreatedAt,
		},
		FromCache: o.FromCache,
	}
}
