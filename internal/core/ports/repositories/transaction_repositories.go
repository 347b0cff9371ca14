package repositories

import (
	"context"

	"github.com/SscSPs/shopbooks/internal/core/domain"
)

// TransactionReader defines read operations for daily transaction entries
type TransactionReader interface {
	// ListTransactions returns the entries matching filter ordered by date, then id.
	// An empty result is an empty slice, never an error.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// FindTransactionByID retrieves a single entry. Returns apperrors.ErrNotFound when absent.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for daily transaction entries.
// Entries are append-only: there is no update or delete.
type TransactionWriter interface {
	// AppendTransaction persists a new entry recorded by actor and returns it
	// with its store-assigned id and creation timestamp.
	AppendTransaction(ctx context.Context, txn domain.Transaction, actor string) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
