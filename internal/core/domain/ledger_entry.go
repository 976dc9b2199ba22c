package domain

import "github.com/shopspring/decimal"

// Direction is one side of a double-entry movement.
type Direction string

const (
	Debit  Direction = "debit"
	Credit Direction = "credit"
)

// LedgerEntry is one immutable half-movement of a Transaction. Entries are
// append-only: no update, no delete, ever.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`
	TransactionID string          `json:"transactionID"`
	WalletID      string          `json:"walletID"`
	AssetTypeID   string          `json:"assetTypeID"`
	Direction     Direction       `json:"direction"`
	Amount        decimal.Decimal `json:"amount"` // strictly positive
	CreatedAt
}

// EnrichedEntry is a LedgerEntry joined with display-only context for the
// history read model (spec.md §4.3 "joined with asset symbol and
// transaction metadata").
type EnrichedEntry struct {
	LedgerEntry
	AssetSymbol     string `json:"assetSymbol"`
	TransactionType string `json:"transactionType"`
	TransactionRef  string `json:"transactionReference"`
}
