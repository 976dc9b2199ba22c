package repositories

import (
	"context"

	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// InsertTransactionInTx persists the business-level transaction row
	// within tx, so it commits atomically with its ledger entries and its
	// idempotency record.
	InsertTransactionInTx(ctx context.Context, tx pgx.Tx, transaction domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
