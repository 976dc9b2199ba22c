package domain

import "encoding/json"

// TransactionType is the business flow that produced a Transaction.
type TransactionType string

const (
	TxTopup TransactionType = "topup"
	TxBonus TransactionType = "bonus"
	TxSpend TransactionType = "spend"
)

// Transaction is the business-level event. Every Transaction has exactly
// two associated LedgerEntries: one debit and one credit, equal amount,
// equal asset, distinct wallets.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Type          TransactionType `json:"type"`
	Reference     string          `json:"reference"`
	InitiatedBy   string          `json:"initiatedBy"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	CreatedAt
}
