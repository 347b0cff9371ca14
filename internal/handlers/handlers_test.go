package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/SscSPs/shopbooks/internal/dto"
	"github.com/SscSPs/shopbooks/internal/handlers"
	"github.com/SscSPs/shopbooks/internal/middleware"
	"github.com/SscSPs/shopbooks/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUser = "alice"

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	jwtSecret       string
	pingErr         error
	mockTransaction *MockTransactionService
	mockCheque      *MockChequeService
	mockReporting   *MockReportingService
	mockImport      *MockImportService
	mockUser        *MockUserService
	mockToken       *MockTokenService
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.pingErr = nil
	suite.mockTransaction = new(MockTransactionService)
	suite.mockCheque = new(MockChequeService)
	suite.mockReporting = new(MockReportingService)
	suite.mockImport = new(MockImportService)
	suite.mockUser = new(MockUserService)
	suite.mockToken = new(MockTokenService)

	loginLimiter, err := middleware.NewMemoryLimiter("2-M")
	suite.Require().NoError(err)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	services := &portssvc.ServiceContainer{
		Transaction: suite.mockTransaction,
		Cheque:      suite.mockCheque,
		Reporting:   suite.mockReporting,
		Import:      suite.mockImport,
		User:        suite.mockUser,
		Token:       suite.mockToken,
	}

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	ping := func(ctx context.Context) error { return suite.pingErr }
	handlers.RegisterRoutes(suite.router, cfg, services, ping, loginLimiter)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockTransaction.AssertExpectations(suite.T())
	suite.mockCheque.AssertExpectations(suite.T())
	suite.mockReporting.AssertExpectations(suite.T())
	suite.mockImport.AssertExpectations(suite.T())
	suite.mockUser.AssertExpectations(suite.T())
	suite.mockToken.AssertExpectations(suite.T())
}

// generateTestToken creates a signed JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(username string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "shopbooks-test",
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUser))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var errStoreDown = apperrors.NewStoreError("failed to query transactions", errors.New("connection refused"))

// --- Health ---

func (suite *HandlerTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)

	suite.pingErr = errStoreDown
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *HandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Transactions ---

func (suite *HandlerTestSuite) TestCreateTransaction_Success() {
	saved := &domain.Transaction{
		TransactionID: 42,
		ShopName:      "Gampaha",
		Date:          day(2024, 1, 2),
		Sales:         decimal.NewFromInt(1000),
		Cost:          decimal.NewFromInt(600),
		Expenses: domain.NewExpenses(map[domain.ExpenseCategory]decimal.Decimal{
			domain.ExpenseRent: decimal.NewFromInt(100),
		}, ""),
		BankDeposit: decimal.NewFromInt(200),
		AuditFields: domain.AuditFields{CreatedBy: testUser},
	}
	suite.mockTransaction.On("RecordTransaction",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
			return r.ShopName == "Gampaha" && r.Sales.Equal(decimal.NewFromInt(1000)) && r.Expenses.Total().Equal(decimal.NewFromInt(100))
		}),
		testUser,
	).Return(saved, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions",
		`{"shopName":"Gampaha","date":"2024-01-02","sales":1000,"cost":"600","expenses":{"rent":100},"bankDeposit":200}`)

	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.Equal(float64(42), body["transactionID"])
	derived := body["derived"].(map[string]any)
	suite.Equal("400", derived["grossProfit"])
	suite.Equal("300", derived["netProfit"])
	suite.Equal("700", derived["remainingCash"])
}

func (suite *HandlerTestSuite) TestCreateTransaction_ValidationError() {
	suite.mockTransaction.On("RecordTransaction", mock.Anything, mock.Anything, testUser).
		Return(nil, apperrors.Validationf("sales must not be negative (got -5)")).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", `{"shopName":"Gampaha","date":"2024-01-02","sales":-5}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decode(w)["error"], "sales must not be negative")
}

func (suite *HandlerTestSuite) TestCreateTransaction_MissingFields() {
	w := suite.do(http.MethodPost, "/api/v1/transactions", `{"sales":10}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransaction.AssertNotCalled(suite.T(), "RecordTransaction")
}

func (suite *HandlerTestSuite) TestListTransactions_Filter() {
	txns := []domain.Transaction{
		{TransactionID: 1, ShopName: "Gampaha", Date: day(2024, 1, 5), Sales: decimal.NewFromInt(500)},
	}
	suite.mockTransaction.On("ListTransactions", mock.Anything,
		mock.MatchedBy(func(f domain.TransactionFilter) bool {
			return f.ShopName == "Gampaha" && f.From != nil && f.From.Equal(day(2024, 1, 1)) && f.To == nil
		}),
	).Return(txns, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?shop=Gampaha&from=2024-01-01", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Count)
	suite.Equal("500", resp.Transactions[0].Derived.GrossProfit.String())
}

func (suite *HandlerTestSuite) TestListTransactions_RecentDays() {
	suite.mockTransaction.On("ListTransactions", mock.Anything,
		mock.MatchedBy(func(f domain.TransactionFilter) bool {
			return f.From != nil && f.From.Equal(day(2024, 3, 24)) && f.To != nil && f.To.Equal(day(2024, 3, 31))
		}),
	).Return([]domain.Transaction{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?recentDays=7&asOf=2024-03-31", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestListTransactions_BadDate() {
	w := suite.do(http.MethodGet, "/api/v1/transactions?from=01/02/2024", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListTransactions_StoreUnavailable() {
	suite.mockTransaction.On("ListTransactions", mock.Anything, domain.TransactionFilter{}).Return(nil, errStoreDown).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions", nil)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("Failed to list transactions", suite.decode(w)["error"])
}

func (suite *HandlerTestSuite) TestGetDerived() {
	txn := &domain.Transaction{TransactionID: 9, Sales: decimal.NewFromInt(100), Cost: decimal.NewFromInt(40)}
	derived := domain.Derived{GrossProfit: decimal.NewFromInt(60), NetProfit: decimal.NewFromInt(60), RemainingCash: decimal.NewFromInt(100)}
	suite.mockTransaction.On("GetDerived", mock.Anything, int64(9)).Return(txn, derived, nil).Once()
	suite.mockTransaction.On("GetDerived", mock.Anything, int64(10)).
		Return(nil, domain.Derived{}, fmt.Errorf("transaction 10: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions/9/derived", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("60", suite.decode(w)["derived"].(map[string]any)["grossProfit"])

	w = suite.do(http.MethodGet, "/api/v1/transactions/10/derived", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/transactions/abc/derived", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListShops() {
	suite.mockTransaction.On("Shops").Return([]string{"Gampaha", "Nittambuwa"}).Once()

	w := suite.do(http.MethodGet, "/api/v1/shops", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal([]any{"Gampaha", "Nittambuwa"}, suite.decode(w)["shops"])
}

// --- Cheques ---

func (suite *HandlerTestSuite) TestCreateCheque() {
	saved := &domain.Cheque{ChequeID: 3, Amount: decimal.NewFromInt(500), Status: domain.ChequePending, Payee: "Supplier"}
	suite.mockCheque.On("IssueCheque", mock.Anything,
		mock.MatchedBy(func(r dto.CreateChequeRequest) bool { return r.ChequeNumber == "0001" }),
		testUser,
	).Return(saved, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/cheques",
		`{"date":"2024-01-02","shopName":"Gampaha","amount":500,"payee":"Supplier","chequeNumber":"0001","bank":"BOC"}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("Pending", suite.decode(w)["status"])
}

func (suite *HandlerTestSuite) TestListCheques_ByStatus() {
	suite.mockCheque.On("ListCheques", mock.Anything,
		mock.MatchedBy(func(s *domain.ChequeStatus) bool { return s != nil && *s == domain.ChequeBounced }),
	).Return([]domain.Cheque{{ChequeID: 1, Status: domain.ChequeBounced}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/cheques?status=bounced", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(float64(1), suite.decode(w)["count"])

	w = suite.do(http.MethodGet, "/api/v1/cheques?status=lost", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateChequeStatus() {
	suite.mockCheque.On("UpdateChequeStatus", mock.Anything, int64(5), domain.ChequeCleared, testUser).Return(nil).Once()
	suite.mockCheque.On("UpdateChequeStatus", mock.Anything, int64(6), domain.ChequeBounced, testUser).
		Return(fmt.Errorf("cheque 6: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPatch, "/api/v1/cheques/5/status", `{"status":"cleared"}`)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodPatch, "/api/v1/cheques/6/status", `{"status":"Bounced"}`)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodPatch, "/api/v1/cheques/5/status", `{"status":"Void"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Reports ---

func (suite *HandlerTestSuite) TestDashboard() {
	asOf := day(2024, 3, 31)
	dashboard := &domain.Dashboard{
		AsOf:        asOf,
		HasData:     true,
		BankBalance: decimal.NewFromInt(7000),
		Forecast:    domain.Forecast{TargetPeriod: "2024-04", Predictions: map[string]decimal.Decimal{}},
	}
	suite.mockReporting.On("Dashboard", mock.Anything, asOf).Return(dashboard, nil).Twice()

	w := suite.do(http.MethodGet, "/api/v1/reports/dashboard?asOf=2024-03-31", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("7000", suite.decode(w)["bankBalance"])

	w = suite.do(http.MethodGet, "/api/v1/reports/dashboard.pdf?asOf=2024-03-31", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.True(bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func (suite *HandlerTestSuite) TestDashboard_Errors() {
	w := suite.do(http.MethodGet, "/api/v1/reports/dashboard?asOf=yesterday", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockReporting.On("Dashboard", mock.Anything, day(2024, 3, 31)).Return(nil, errStoreDown).Once()
	w = suite.do(http.MethodGet, "/api/v1/reports/dashboard?asOf=2024-03-31", nil)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *HandlerTestSuite) TestSalesReport() {
	suite.mockReporting.On("SalesReport", mock.Anything,
		mock.MatchedBy(func(f domain.TransactionFilter) bool { return f.ShopName == "Gampaha" }),
		domain.GranularityWeek, 0,
	).Return(&domain.SalesReport{Granularity: domain.GranularityWeek}, nil).Once()
	suite.mockReporting.On("SalesReport", mock.Anything, domain.TransactionFilter{}, domain.GranularityMonth, 10).
		Return(&domain.SalesReport{Granularity: domain.GranularityMonth}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/sales?shop=Gampaha", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("week", suite.decode(w)["granularity"])

	w = suite.do(http.MethodGet, "/api/v1/reports/sales?granularity=Month&bins=10", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/reports/sales?granularity=year", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestShopComparison_EmptyIsArray() {
	suite.mockReporting.On("ShopComparison", mock.Anything, domain.TransactionFilter{}).
		Return([]domain.ShopPerformance(nil), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/shops", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("[]", strings.TrimSpace(w.Body.String()))
}

func (suite *HandlerTestSuite) TestBankReportAndForecast() {
	suite.mockReporting.On("BankReport", mock.Anything, domain.TransactionFilter{}).
		Return(&domain.BankReport{BankBalance: decimal.NewFromInt(7500)}, nil).Once()
	suite.mockReporting.On("Forecast", mock.Anything, day(2024, 3, 31)).
		Return(&domain.Forecast{TargetPeriod: "2024-04", Predictions: map[string]decimal.Decimal{"Gampaha": decimal.NewFromInt(2000)}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/bank", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("7500", suite.decode(w)["bankBalance"])

	w = suite.do(http.MethodGet, "/api/v1/reports/forecast?asOf=2024-03-31", nil)
	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Equal("2024-04", body["targetPeriod"])
	suite.Equal("2000", body["predictions"].(map[string]any)["Gampaha"])
}

// --- Import ---

func (suite *HandlerTestSuite) TestImport() {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "books.csv")
	suite.Require().NoError(err)
	_, _ = part.Write([]byte("date,shop_name,sales,cost,cash_out,bank_deposit\n2024-01-01,Gampaha,10,5,0,0\n"))
	suite.Require().NoError(mw.Close())

	result := &domain.ImportResult{
		TotalRows: 2,
		Imported:  []domain.Transaction{{TransactionID: 1}},
		Failed:    []domain.ImportRowError{{Row: 2, Reason: "bad date"}},
	}
	suite.mockImport.On("ImportFile", mock.Anything, "books.csv", mock.Anything, testUser).Return(result, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUser))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ImportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.ImportedCount)
	suite.Equal(1, resp.FailedCount)
	suite.Equal(2, resp.Failed[0].Row)
}

func (suite *HandlerTestSuite) TestImport_NoFile() {
	w := suite.do(http.MethodPost, "/api/v1/import", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestImportTemplate() {
	suite.mockImport.On("WriteTemplate", mock.Anything).Return(nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/import/template", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv", w.Header().Get("Content-Type"))
	suite.Contains(w.Body.String(), "date,shop_name")
}

// --- Auth and users ---

func (suite *HandlerTestSuite) TestLogin() {
	user := &domain.User{Username: testUser, Role: domain.RoleAdmin}
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.mockUser.On("AuthenticateUser", mock.Anything, testUser, "secret1").Return(user, nil).Once()
	suite.mockUser.On("AuthenticateUser", mock.Anything, testUser, "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()
	suite.mockToken.On("GenerateAccessToken", mock.Anything, user).Return("signed.jwt.token", expires, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: testUser, Password: "secret1"})
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed.jwt.token", resp.Token)
	suite.Equal("admin", resp.User.Role)

	w = suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: testUser, Password: "wrong"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	// The limiter allows two attempts per minute.
	w = suite.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: testUser, Password: "wrong"})
	suite.Equal(http.StatusTooManyRequests, w.Code)
}

func (suite *HandlerTestSuite) TestRegister() {
	created := &domain.User{Username: "bob", Role: domain.RoleUser}
	suite.mockUser.On("CreateUser", mock.Anything, dto.CreateUserRequest{Username: "bob", Password: "secret1"}).Return(created, nil).Once()
	suite.mockUser.On("CreateUser", mock.Anything, dto.CreateUserRequest{Username: "carol", Password: "secret1"}).
		Return(nil, fmt.Errorf("user carol: %w", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", dto.CreateUserRequest{Username: "bob", Password: "secret1"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/register", dto.CreateUserRequest{Username: "carol", Password: "secret1"})
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/register", dto.CreateUserRequest{Username: "dave", Password: "123"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRegister_RoleIsNotSelectable() {
	suite.mockUser.On("CreateUser", mock.Anything, dto.CreateUserRequest{Username: "eve", Password: "secret1"}).
		Return(&domain.User{Username: "eve", Role: domain.RoleUser}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", `{"username":"eve","password":"secret1","role":"admin"}`)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("user", suite.decode(w)["role"])
}

func (suite *HandlerTestSuite) TestMe() {
	suite.mockUser.On("GetUserByUsername", mock.Anything, testUser).Return(&domain.User{Username: testUser, Email: "a@example.com"}, nil).Once()
	email := "alice@example.com"
	suite.mockUser.On("UpdateUser", mock.Anything, testUser,
		mock.MatchedBy(func(r dto.UpdateUserRequest) bool { return r.Email != nil && *r.Email == email }),
	).Return(&domain.User{Username: testUser, Email: email}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/me", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("a@example.com", suite.decode(w)["email"])

	w = suite.do(http.MethodPut, "/api/v1/users/me", dto.UpdateUserRequest{Email: &email})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(email, suite.decode(w)["email"])
}
