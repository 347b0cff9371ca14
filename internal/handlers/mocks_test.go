package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/shopbooks/internal/core/domain"
	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/SscSPs/shopbooks/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetDerived(ctx context.Context, transactionID int64) (*domain.Transaction, domain.Derived, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, domain.Derived{}, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(domain.Derived), args.Error(2)
}

func (m *MockTransactionService) Shops() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockTransactionService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) AppendValidated(ctx context.Context, txn domain.Transaction, actor string) (*domain.Transaction, error) {
	args := m.Called(ctx, txn, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock ChequeService ---
type MockChequeService struct {
	mock.Mock
}

func (m *MockChequeService) IssueCheque(ctx context.Context, req dto.CreateChequeRequest, actor string) (*domain.Cheque, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}

func (m *MockChequeService) ListCheques(ctx context.Context, status *domain.ChequeStatus) ([]domain.Cheque, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cheque), args.Error(1)
}

func (m *MockChequeService) UpdateChequeStatus(ctx context.Context, chequeID int64, status domain.ChequeStatus, actor string) error {
	args := m.Called(ctx, chequeID, status, actor)
	return args.Error(0)
}

var _ portssvc.ChequeSvcFacade = (*MockChequeService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Dashboard(ctx context.Context, asOf time.Time) (*domain.Dashboard, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *MockReportingService) SalesReport(ctx context.Context, filter domain.TransactionFilter, g domain.Granularity, bins int) (*domain.SalesReport, error) {
	args := m.Called(ctx, filter, g, bins)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesReport), args.Error(1)
}

func (m *MockReportingService) ShopComparison(ctx context.Context, filter domain.TransactionFilter) ([]domain.ShopPerformance, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopPerformance), args.Error(1)
}

func (m *MockReportingService) BankReport(ctx context.Context, filter domain.TransactionFilter) (*domain.BankReport, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReport), args.Error(1)
}

func (m *MockReportingService) Forecast(ctx context.Context, asOf time.Time) (*domain.Forecast, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Forecast), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) ImportFile(ctx context.Context, filename string, r io.Reader, actor string) (*domain.ImportResult, error) {
	args := m.Called(ctx, filename, r, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}

func (m *MockImportService) WriteTemplate(w io.Writer) error {
	args := m.Called(w)
	if args.Error(0) == nil {
		_, _ = io.WriteString(w, "date,shop_name\n")
	}
	return args.Error(0)
}

var _ portssvc.ImportSvc = (*MockImportService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, username string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, username, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)
