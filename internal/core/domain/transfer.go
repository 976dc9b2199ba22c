package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Flow names one of the three fixed transfer shapes the engine supports.
// Each flow fixes which side of the movement is a system wallet.
type Flow string

const (
	FlowTopup Flow = "topup" // system:treasury  -> wallet
	FlowBonus Flow = "bonus" // system:bonus_pool -> wallet
	FlowSpend Flow = "spend" // wallet -> system:revenue
)

// TransactionType maps a Flow onto the Transaction.Type it produces.
func (f Flow) TransactionType() TransactionType {
	return TransactionType(f)
}

// TransferInput is everything the transfer engine needs to execute one
// topup, bonus, or spend (spec.md §4.6 "Input").
type TransferInput struct {
	Flow           Flow
	WalletID       string
	AssetTypeID    string
	Amount         decimal.Decimal
	Reference      string
	InitiatedBy    string
	Metadata       json.RawMessage
	IdempotencyKey string
	Endpoint       string // e.g. "POST /v1/wallets/:walletID/transfers/topup"; recorded on the idempotency row, not part of the canonical hash
}

// TransferResult is the durable outcome of a transfer, returned to the
// caller whether the request executed the write or hit the idempotency
// cache (spec.md §4.6 "Result").
type TransferResult struct {
	TransactionID string          `json:"transactionID"`
	Type          TransactionType `json:"type"`
	Reference     string          `json:"reference"`
	AssetTypeID   string          `json:"assetTypeID"`
	AssetSymbol   string          `json:"assetSymbol"`
	Amount        decimal.Decimal `json:"amount"`
	FromWalletID  string          `json:"fromWalletID"`
	ToWalletID    string          `json:"toWalletID"`
	CreatedAt     string          `json:"createdAt"`
}

// TransferOutcome wraps a TransferResult with the flag callers need to
// distinguish a freshly executed write from a replayed idempotent one.
type TransferOutcome struct {
	Result    TransferResult `json:"data"`
	FromCache bool           `json:"fromCache"`
}
