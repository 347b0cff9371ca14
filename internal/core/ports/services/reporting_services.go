package services

import (
	"context"
	"time"

	"github.com/SscSPs/shopbooks/internal/core/domain"
)

// ReportingService defines the read-only analytical views over the books.
type ReportingService interface {
	// Dashboard computes the landing page figures as of a business date.
	Dashboard(ctx context.Context, asOf time.Time) (*domain.Dashboard, error)

	// SalesReport computes analytics over the filtered entries. bins <= 0 uses the default histogram size.
	SalesReport(ctx context.Context, filter domain.TransactionFilter, g domain.Granularity, bins int) (*domain.SalesReport, error)

	// ShopComparison compares shops over the filtered entries.
	ShopComparison(ctx context.Context, filter domain.TransactionFilter) ([]domain.ShopPerformance, error)

	// BankReport summarises deposits of the filtered entries and all cheques.
	BankReport(ctx context.Context, filter domain.TransactionFilter) (*domain.BankReport, error)

	// Forecast predicts next month's sales per shop using entries up to asOf.
	Forecast(ctx context.Context, asOf time.Time) (*domain.Forecast, error)
}
