package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/shopbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/SscSPs/shopbooks/internal/dto"
	"github.com/SscSPs/shopbooks/internal/utils/accounting"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	shops           []string
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithShops restricts entries to the given shop names. Without it any
// non-empty shop name is accepted.
func WithShops(names []string) TransactionServiceOption {
	return func(s *transactionService) {
		s.shops = append([]string(nil), names...)
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{transactionRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) Shops() []string {
	return append([]string(nil), s.shops...)
}

// RecordTransaction validates and appends a new entry on behalf of actor.
func (s *transactionService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor string) (*domain.Transaction, error) {
	date, err := domain.ParseBusinessDate(req.Date)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		ShopName:    strings.TrimSpace(req.ShopName),
		Date:        date,
		Sales:       req.Sales,
		Cost:        req.Cost,
		CashOut:     req.CashOut,
		Expenses:    req.Expenses,
		BankDeposit: req.BankDeposit,
	}
	return s.AppendValidated(ctx, txn, actor)
}

// AppendValidated checks the shop and amounts of txn and appends it.
func (s *transactionService) AppendValidated(ctx context.Context, txn domain.Transaction, actor string) (*domain.Transaction, error) {
	if actor == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if err := checkShop(s.shops, txn.ShopName); err != nil {
		return nil, err
	}
	if err := txn.Validate(); err != nil {
		s.LogDebug(ctx, "Rejected transaction", slog.String("shop", txn.ShopName), slog.String("reason", err.Error()))
		return nil, err
	}

	saved, err := s.transactionRepo.AppendTransaction(ctx, txn, actor)
	if err != nil {
		s.LogError(ctx, err, "Failed to append transaction", slog.String("shop", txn.ShopName))
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.Int64("transaction_id", saved.TransactionID),
		slog.String("shop", saved.ShopName),
		slog.String("date", saved.Date.Format(domain.DateLayout)))
	return saved, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("shop", filter.ShopName))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *transactionService) GetDerived(ctx context.Context, transactionID int64) (*domain.Transaction, domain.Derived, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, domain.Derived{}, fmt.Errorf("failed to get transaction %d: %w", transactionID, err)
	}
	return txn, accounting.Derive(*txn), nil
}

// checkShop rejects names outside the configured set. An empty set accepts any name.
func checkShop(shops []string, name string) error {
	if len(shops) == 0 {
		return nil
	}
	for _, shop := range shops {
		if shop == name {
			return nil
		}
	}
	return apperrors.Validationf("unknown shop %q (expected one of %s)", name, strings.Join(shops, ", "))
}
