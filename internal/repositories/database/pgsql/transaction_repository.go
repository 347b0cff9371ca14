package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/shopbooks/internal/core/ports/repositories"
	"github.com/SscSPs/shopbooks/internal/models"
	"github.com/SscSPs/shopbooks/internal/repositories/database/query"
	"github.com/SscSPs/shopbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, shop_name, date, sales, cost, cash_out, expenses, bank_deposit, created_by, created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) AppendTransaction(ctx context.Context, txn domain.Transaction, actor string) (*domain.Transaction, error) {
	if actor == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	modelTxn, err := mapping.ToModelTransaction(txn)
	if err != nil {
		return nil, apperrors.Validationf("%v", err)
	}
	modelTxn.CreatedBy = actor

	stmt := `
		INSERT INTO transactions (shop_name, date, sales, cost, cash_out, expenses, bank_deposit, created_by)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8)
		RETURNING transaction_id, created_at;
	`
	err = r.Pool.QueryRow(ctx, stmt,
		modelTxn.ShopName,
		modelTxn.Date,
		modelTxn.Sales,
		modelTxn.Cost,
		modelTxn.CashOut,
		modelTxn.Expenses,
		modelTxn.BankDeposit,
		modelTxn.CreatedBy,
	).Scan(&modelTxn.TransactionID, &modelTxn.CreatedAt)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to insert transaction", err)
	}

	saved, err := mapping.ToDomainTransaction(modelTxn)
	if err != nil {
		return nil, fmt.Errorf("failed to map inserted transaction: %w", err)
	}
	return &saved, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	where := query.TransactionFilter(query.Postgres, filter)
	sql := `SELECT ` + transactionColumns + ` FROM transactions` + where.String() + ` ORDER BY date, transaction_id`

	rows, err := r.Pool.Query(ctx, sql, where.Args()...)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := scanTransaction(rows, &m); err != nil {
			return nil, apperrors.NewStoreError("failed to scan transaction row", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("error iterating transaction rows", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns)
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	sql := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`

	var m models.Transaction
	if err := scanTransaction(r.Pool.QueryRow(ctx, sql, transactionID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

func scanTransaction(row pgx.Row, m *models.Transaction) error {
	return row.Scan(
		&m.TransactionID,
		&m.ShopName,
		&m.Date,
		&m.Sales,
		&m.Cost,
		&m.CashOut,
		&m.Expenses,
		&m.BankDeposit,
		&m.CreatedBy,
		&m.CreatedAt,
	)
}
