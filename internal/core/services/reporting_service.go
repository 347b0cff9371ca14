package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/shopbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/shopbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/SscSPs/shopbooks/internal/utils/accounting"
)

// reportingService implements the ReportingService interface. Every view reads
// a snapshot from the store and computes over it; nothing is cached.
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	chequeRepo      portsrepo.ChequeReader
}

// NewReportingService creates a new reporting service
func NewReportingService(transactions portsrepo.TransactionReader, cheques portsrepo.ChequeReader) portssvc.ReportingService {
	return &reportingService{
		transactionRepo: transactions,
		chequeRepo:      cheques,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// Dashboard computes sales figures and the forecast from entries dated on or
// before asOf. The bank balance covers every deposit and every cheque.
func (s *reportingService) Dashboard(ctx context.Context, asOf time.Time) (*domain.Dashboard, error) {
	asOf = domain.BusinessDate(asOf)
	all, err := s.listTransactions(ctx, domain.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	txns := filterTransactions(all, domain.TransactionFilter{To: &asOf})
	cheques, err := s.listCheques(ctx)
	if err != nil {
		return nil, err
	}

	summary, hasData := accounting.Summarize(txns)
	pendingTotal, pendingCount := accounting.PendingChequeTotal(cheques)
	monthly, _ := accounting.MonthlyPerformance(txns, asOf)

	dashboard := &domain.Dashboard{
		AsOf:               asOf,
		HasData:            hasData,
		Summary:            summary,
		ThisMonthSales:     accounting.SalesInMonth(txns, asOf),
		BankBalance:        accounting.BankBalance(accounting.TotalDeposits(all), pendingTotal),
		PendingChequeTotal: pendingTotal,
		PendingChequeCount: pendingCount,
		MonthlyPerformance: monthly,
		Forecast: domain.Forecast{
			TargetPeriod: accounting.NextPeriodLabel(asOf),
			Predictions:  accounting.PredictNextPeriod(txns, asOf),
		},
	}

	s.LogInfo(ctx, "Dashboard generated",
		slog.String("asOf", asOf.Format(domain.DateLayout)),
		slog.Int("transaction_count", len(txns)),
		slog.Int("cheque_count", len(cheques)))
	return dashboard, nil
}

func (s *reportingService) SalesReport(ctx context.Context, filter domain.TransactionFilter, g domain.Granularity, bins int) (*domain.SalesReport, error) {
	txns, err := s.listTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &domain.SalesReport{Granularity: g}
	report.Summary, report.HasData = accounting.Summarize(txns)
	report.SalesOverTime, _ = accounting.SalesByPeriod(txns, g)
	report.ProfitTrend, _ = accounting.ProfitTrend(txns, g)
	report.Shops, _ = accounting.CompareShops(txns)
	report.ExpenseBreakdown, _ = accounting.ExpenseBreakdown(txns)
	report.Distribution, _ = accounting.SalesDistribution(txns, bins)

	s.LogInfo(ctx, "Sales report generated",
		slog.String("shop", filter.ShopName),
		slog.String("granularity", string(g)),
		slog.Int("transaction_count", len(txns)))
	return report, nil
}

func (s *reportingService) ShopComparison(ctx context.Context, filter domain.TransactionFilter) ([]domain.ShopPerformance, error) {
	txns, err := s.listTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	shops, _ := accounting.CompareShops(txns)
	return shops, nil
}

// BankReport summarises deposits of the filtered entries. The balance always
// covers every deposit ever made, as cheques are not tied to a period.
func (s *reportingService) BankReport(ctx context.Context, filter domain.TransactionFilter) (*domain.BankReport, error) {
	filtered, err := s.listTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}
	all := filtered
	if filter != (domain.TransactionFilter{}) {
		if all, err = s.listTransactions(ctx, domain.TransactionFilter{}); err != nil {
			return nil, err
		}
	}
	cheques, err := s.listCheques(ctx)
	if err != nil {
		return nil, err
	}

	deposits, _ := accounting.SummarizeDeposits(filtered)
	statuses, _ := accounting.ChequeStatusSummary(cheques)
	pending, _ := accounting.PendingChequeTotal(cheques)
	totalDeposits := accounting.TotalDeposits(all)

	return &domain.BankReport{
		Deposits:           deposits,
		ChequeStatus:       statuses,
		PendingChequeTotal: pending,
		TotalDeposits:      totalDeposits,
		BankBalance:        accounting.BankBalance(totalDeposits, pending),
	}, nil
}

func (s *reportingService) Forecast(ctx context.Context, asOf time.Time) (*domain.Forecast, error) {
	asOf = domain.BusinessDate(asOf)
	txns, err := s.listUpTo(ctx, asOf)
	if err != nil {
		return nil, err
	}
	forecast := &domain.Forecast{
		TargetPeriod: accounting.NextPeriodLabel(asOf),
		Predictions:  accounting.PredictNextPeriod(txns, asOf),
	}
	s.LogInfo(ctx, "Forecast generated",
		slog.String("target_period", forecast.TargetPeriod),
		slog.Int("shop_count", len(forecast.Predictions)))
	return forecast, nil
}

func filterTransactions(txns []domain.Transaction, filter domain.TransactionFilter) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if filter.Matches(txn) {
			out = append(out, txn)
		}
	}
	return out
}

func (s *reportingService) listUpTo(ctx context.Context, asOf time.Time) ([]domain.Transaction, error) {
	return s.listTransactions(ctx, domain.TransactionFilter{To: &asOf})
}

func (s *reportingService) listTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for report", slog.String("shop", filter.ShopName))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	return txns, nil
}

func (s *reportingService) listCheques(ctx context.Context) ([]domain.Cheque, error) {
	cheques, err := s.chequeRepo.ListCheques(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve cheques for report")
		return nil, fmt.Errorf("failed to retrieve cheques: %w", err)
	}
	return cheques, nil
}
