package repositories

import (
	"context"

	"github.com/rah7202/Dino-Wallet-Service/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LedgerEntryReader defines read operations over the append-only entry log.
type LedgerEntryReader interface {
	// FindEntriesByTransactionID retrieves the two entries (debit, credit)
	// belonging to a single transaction.
	FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.LedgerEntry, error)

	// ListEntriesByWallet retrieves a paginated, enriched history of entries
	// touching a wallet, optionally filtered by asset type.
	ListEntriesByWallet(ctx context.Context, walletID, assetTypeID string, limit, offset int) ([]domain.EnrichedEntry, int, error)
}

// LedgerEntryWriter defines write operations over the entry log. Entries
// are only ever written as the paired debit/credit halves of a
// Transaction, inside the transfer transaction.
type LedgerEntryWriter interface {
	// InsertEntryPairInTx writes the debit and credit legs of one
	// transaction atomically within tx.
	InsertEntryPairInTx(ctx context.Context, tx pgx.Tx, debit, credit domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines all ledger-entry-related repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
}
