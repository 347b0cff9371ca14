package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/SscSPs/shopbooks/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	txnRepo    *MockTransactionRepository
	chequeRepo *MockChequeRepository
	service    portssvc.ReportingService
	asOf       time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.txnRepo = new(MockTransactionRepository)
	suite.chequeRepo = new(MockChequeRepository)
	suite.service = services.NewReportingService(suite.txnRepo, suite.chequeRepo)
	suite.asOf = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(shop string, on time.Time, sales, deposit int64) domain.Transaction {
	return domain.Transaction{
		ShopName:    shop,
		Date:        on,
		Sales:       decimal.NewFromInt(sales),
		Cost:        decimal.NewFromInt(sales / 2),
		BankDeposit: decimal.NewFromInt(deposit),
	}
}

func upTo(asOf time.Time) interface{} {
	return mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.To != nil && f.To.Equal(asOf) && f.From == nil && f.ShopName == ""
	})
}

func (suite *ReportingServiceTestSuite) TestDashboard() {
	ctx := context.Background()
	txns := []domain.Transaction{
		entry("Gampaha", day(2024, 1, 10), 1000, 4000),
		entry("Gampaha", day(2024, 2, 10), 2000, 3000),
		entry("Gampaha", day(2024, 3, 10), 3000, 3000),
	}
	cheques := []domain.Cheque{
		{Amount: decimal.NewFromInt(3000), Status: domain.ChequePending},
		{Amount: decimal.NewFromInt(5000), Status: domain.ChequeCleared},
		{Amount: decimal.NewFromInt(700), Status: domain.ChequeBounced},
	}
	suite.txnRepo.On("ListTransactions", ctx, domain.TransactionFilter{}).Return(txns, nil).Once()
	suite.chequeRepo.On("ListCheques", ctx, (*domain.ChequeStatus)(nil)).Return(cheques, nil).Once()

	d, err := suite.service.Dashboard(ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.True(d.HasData)
	suite.Equal("6000", d.Summary.TotalSales.String())
	suite.Equal("3000", d.ThisMonthSales.String())
	suite.Equal("7000", d.BankBalance.String())
	suite.Equal("3000", d.PendingChequeTotal.String())
	suite.Equal(1, d.PendingChequeCount)
	suite.Len(d.MonthlyPerformance, 3)
	suite.Equal("2024-04", d.Forecast.TargetPeriod)
	suite.Equal("2000", d.Forecast.Predictions["Gampaha"].String())
}

func (suite *ReportingServiceTestSuite) TestDashboard_BankBalanceIncludesLaterDeposits() {
	ctx := context.Background()
	txns := []domain.Transaction{
		entry("Gampaha", day(2024, 3, 10), 1000, 4000),
		entry("Gampaha", day(2024, 4, 2), 2000, 6000),
	}
	suite.txnRepo.On("ListTransactions", ctx, domain.TransactionFilter{}).Return(txns, nil).Twice()
	suite.chequeRepo.On("ListCheques", ctx, (*domain.ChequeStatus)(nil)).Return([]domain.Cheque{}, nil).Twice()

	d, err := suite.service.Dashboard(ctx, suite.asOf)
	suite.Require().NoError(err)
	bank, err := suite.service.BankReport(ctx, domain.TransactionFilter{})
	suite.Require().NoError(err)

	suite.Equal("10000", d.BankBalance.String())
	suite.True(d.BankBalance.Equal(bank.BankBalance))
	suite.Equal("1000", d.Summary.TotalSales.String())
	suite.Equal("2024-04", d.Forecast.TargetPeriod)
	suite.Equal("1000", d.Forecast.Predictions["Gampaha"].String())
}

func (suite *ReportingServiceTestSuite) TestDashboard_EmptyStore() {
	ctx := context.Background()
	suite.txnRepo.On("ListTransactions", ctx, mock.Anything).Return([]domain.Transaction{}, nil).Once()
	suite.chequeRepo.On("ListCheques", ctx, mock.Anything).Return([]domain.Cheque{}, nil).Once()

	d, err := suite.service.Dashboard(ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.False(d.HasData)
	suite.True(d.BankBalance.IsZero())
	suite.Empty(d.Forecast.Predictions)
	suite.Empty(d.MonthlyPerformance)
}

func (suite *ReportingServiceTestSuite) TestDashboard_StoreUnavailable() {
	ctx := context.Background()
	storeErr := apperrors.NewStoreError("query failed", assert.AnError)
	suite.txnRepo.On("ListTransactions", ctx, mock.Anything).Return(nil, storeErr).Once()

	d, err := suite.service.Dashboard(ctx, suite.asOf)

	suite.Nil(d)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.chequeRepo.AssertNotCalled(suite.T(), "ListCheques", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestSalesReport() {
	ctx := context.Background()
	filter := domain.TransactionFilter{ShopName: "Gampaha"}
	txns := []domain.Transaction{
		entry("Gampaha", day(2023, 1, 5), 1000, 0),
		entry("Gampaha", day(2023, 1, 20), 500, 0),
	}
	suite.txnRepo.On("ListTransactions", ctx, filter).Return(txns, nil).Once()

	report, err := suite.service.SalesReport(ctx, filter, domain.GranularityMonth, 0)

	suite.Require().NoError(err)
	suite.True(report.HasData)
	suite.Require().Len(report.SalesOverTime, 1)
	suite.Equal("1500", report.SalesOverTime[0].Sales.String())
	suite.Len(report.Shops, 1)
	suite.Equal("50", report.Shops[0].GrossMargin.String())
	suite.NotEmpty(report.Distribution)
	suite.Empty(report.ExpenseBreakdown)
}

func (suite *ReportingServiceTestSuite) TestBankReport_BalanceUsesAllDeposits() {
	ctx := context.Background()
	from := day(2024, 2, 1)
	filter := domain.TransactionFilter{From: &from}
	all := []domain.Transaction{
		entry("Gampaha", day(2024, 1, 10), 0, 4000),
		entry("Gampaha", day(2024, 2, 10), 0, 6000),
	}
	suite.txnRepo.On("ListTransactions", ctx, filter).Return(all[1:], nil).Once()
	suite.txnRepo.On("ListTransactions", ctx, domain.TransactionFilter{}).Return(all, nil).Once()
	suite.chequeRepo.On("ListCheques", ctx, (*domain.ChequeStatus)(nil)).Return([]domain.Cheque{
		{Amount: decimal.NewFromInt(2500), Status: domain.ChequePending},
	}, nil).Once()

	report, err := suite.service.BankReport(ctx, filter)

	suite.Require().NoError(err)
	suite.Equal("6000", report.Deposits.Total.String())
	suite.Equal("10000", report.TotalDeposits.String())
	suite.Equal("7500", report.BankBalance.String())
	suite.Len(report.ChequeStatus, 3)
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestForecast() {
	ctx := context.Background()
	suite.txnRepo.On("ListTransactions", ctx, upTo(suite.asOf)).Return([]domain.Transaction{
		entry("Nittambuwa", day(2024, 3, 2), 500, 0),
	}, nil).Once()

	f, err := suite.service.Forecast(ctx, suite.asOf)

	suite.Require().NoError(err)
	suite.Equal("2024-04", f.TargetPeriod)
	suite.Equal("500", f.Predictions["Nittambuwa"].String())
	_, ok := f.Predictions["Gampaha"]
	suite.False(ok)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
