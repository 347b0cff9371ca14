package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) AppendTransaction(ctx context.Context, txn domain.Transaction, actor string) (*domain.Transaction, error) {
	args := m.Called(ctx, txn, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Mock ChequeRepository ---
type MockChequeRepository struct {
	mock.Mock
}

func (m *MockChequeRepository) ListCheques(ctx context.Context, status *domain.ChequeStatus) ([]domain.Cheque, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cheque), args.Error(1)
}

func (m *MockChequeRepository) AppendCheque(ctx context.Context, cheque domain.Cheque) (*domain.Cheque, error) {
	args := m.Called(ctx, cheque)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}

func (m *MockChequeRepository) SetChequeStatus(ctx context.Context, chequeID int64, status domain.ChequeStatus) error {
	args := m.Called(ctx, chequeID, status)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, username string, at time.Time) error {
	args := m.Called(ctx, username, at)
	return args.Error(0)
}

// memTransactionRepo is an in-memory append-only store for flows that need
// written entries to be read back.
type memTransactionRepo struct {
	rows   []domain.Transaction
	nextID int64
}

func (r *memTransactionRepo) ListTransactions(_ context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	out := []domain.Transaction{}
	for _, t := range r.rows {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTransactionRepo) FindTransactionByID(_ context.Context, id int64) (*domain.Transaction, error) {
	for _, t := range r.rows {
		if t.TransactionID == id {
			found := t
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memTransactionRepo) AppendTransaction(_ context.Context, txn domain.Transaction, actor string) (*domain.Transaction, error) {
	r.nextID++
	txn.TransactionID = r.nextID
	txn.CreatedBy = actor
	txn.CreatedAt = time.Now().UTC()
	r.rows = append(r.rows, txn)
	return &txn, nil
}
