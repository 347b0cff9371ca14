package services

import (
	"context"

	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/SscSPs/shopbooks/internal/dto"
)

// TransactionReaderSvc defines read operations for day-book entries
type TransactionReaderSvc interface {
	// ListTransactions returns the entries matching filter, oldest first.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// GetDerived returns an entry together with its computed figures.
	GetDerived(ctx context.Context, transactionID int64) (*domain.Transaction, domain.Derived, error)

	// Shops lists the shop names entries may be recorded against.
	Shops() []string
}

// TransactionWriterSvc defines write operations for day-book entries
type TransactionWriterSvc interface {
	// RecordTransaction validates and appends a new entry on behalf of actor.
	RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor string) (*domain.Transaction, error)

	// AppendValidated appends an already-built entry after the shop and amount checks.
	AppendValidated(ctx context.Context, txn domain.Transaction, actor string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
