package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/shopbooks/internal/core/ports/repositories"
	"github.com/SscSPs/shopbooks/internal/models"
	"github.com/SscSPs/shopbooks/internal/repositories/database/query"
	"github.com/SscSPs/shopbooks/internal/utils/mapping"
)

const transactionColumns = `transaction_id, shop_name, date, sales, cost, cash_out, expenses, bank_deposit, created_by, created_at`

type SQLiteTransactionRepository struct {
	BaseRepository
	now func() time.Time
}

func newSQLiteTransactionRepository(db *sql.DB) *SQLiteTransactionRepository {
	return &SQLiteTransactionRepository{BaseRepository: BaseRepository{DB: db}, now: time.Now}
}

var _ portsrepo.TransactionRepositoryFacade = (*SQLiteTransactionRepository)(nil)

func (r *SQLiteTransactionRepository) AppendTransaction(ctx context.Context, txn domain.Transaction, actor string) (*domain.Transaction, error) {
	if actor == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	m, err := mapping.ToModelTransaction(txn)
	if err != nil {
		return nil, apperrors.Validationf("%v", err)
	}
	m.CreatedBy = actor
	m.CreatedAt = r.now().UTC()

	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO transactions (shop_name, date, sales, cost, cash_out, expenses, bank_deposit, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ShopName,
		formatDate(m.Date),
		m.Sales.String(),
		m.Cost.String(),
		m.CashOut.String(),
		m.Expenses,
		m.BankDeposit.String(),
		m.CreatedBy,
		formatTimestamp(m.CreatedAt),
	)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to insert transaction", err)
	}
	if m.TransactionID, err = res.LastInsertId(); err != nil {
		return nil, apperrors.NewStoreError("failed to read transaction id", err)
	}

	saved, err := mapping.ToDomainTransaction(m)
	if err != nil {
		return nil, fmt.Errorf("failed to map inserted transaction: %w", err)
	}
	return &saved, nil
}

func (r *SQLiteTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	where := query.TransactionFilter(query.SQLite, filter)
	stmt := `SELECT ` + transactionColumns + ` FROM transactions` + where.String() + ` ORDER BY date, transaction_id`

	rows, err := r.DB.QueryContext(ctx, stmt, where.Args()...)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewStoreError("failed to scan transaction row", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("error iterating transaction rows", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns)
}

func (r *SQLiteTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = ?`, transactionID)
	m, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %d: %w", transactionID, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to find transaction %d", transactionID), err)
	}

	txn, err := mapping.ToDomainTransaction(m)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var m models.Transaction
	var date, createdAt string
	err := row.Scan(
		&m.TransactionID,
		&m.ShopName,
		&date,
		&m.Sales,
		&m.Cost,
		&m.CashOut,
		&m.Expenses,
		&m.BankDeposit,
		&m.CreatedBy,
		&createdAt,
	)
	if err != nil {
		return models.Transaction{}, err
	}
	if m.Date, err = parseDate(date); err != nil {
		return models.Transaction{}, err
	}
	if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return models.Transaction{}, err
	}
	return m, nil
}
