package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/shopbooks/internal/core/ports/repositories"
	"github.com/SscSPs/shopbooks/internal/models"
	"github.com/SscSPs/shopbooks/internal/repositories/database/query"
	"github.com/SscSPs/shopbooks/internal/utils/mapping"
)

type SQLiteChequeRepository struct {
	BaseRepository
}

func newSQLiteChequeRepository(db *sql.DB) *SQLiteChequeRepository {
	return &SQLiteChequeRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ChequeRepositoryFacade = (*SQLiteChequeRepository)(nil)

func (r *SQLiteChequeRepository) AppendCheque(ctx context.Context, cheque domain.Cheque) (*domain.Cheque, error) {
	cheque.Status = domain.ChequePending
	if err := cheque.Validate(); err != nil {
		return nil, err
	}

	m := mapping.ToModelCheque(cheque)
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO cheques (date, shop_name, amount, payee, status, cheque_number, bank_name)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		formatDate(m.Date),
		m.ShopName,
		m.Amount.String(),
		m.Payee,
		m.Status,
		m.ChequeNumber,
		m.Bank,
	)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to insert cheque", err)
	}
	if m.ChequeID, err = res.LastInsertId(); err != nil {
		return nil, apperrors.NewStoreError("failed to read cheque id", err)
	}

	saved := mapping.ToDomainCheque(m)
	return &saved, nil
}

func (r *SQLiteChequeRepository) ListCheques(ctx context.Context, status *domain.ChequeStatus) ([]domain.Cheque, error) {
	where := query.ChequeStatus(query.SQLite, status)
	stmt := `
		SELECT cheque_id, date, shop_name, amount, payee, status, cheque_number, bank_name
		FROM cheques` + where.String() + `
		ORDER BY date DESC, cheque_id DESC`

	rows, err := r.DB.QueryContext(ctx, stmt, where.Args()...)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query cheques", err)
	}
	defer rows.Close()

	modelCheques := []models.Cheque{}
	for rows.Next() {
		var m models.Cheque
		var date string
		if err := rows.Scan(&m.ChequeID, &date, &m.ShopName, &m.Amount, &m.Payee, &m.Status, &m.ChequeNumber, &m.Bank); err != nil {
			return nil, apperrors.NewStoreError("failed to scan cheque row", err)
		}
		if m.Date, err = parseDate(date); err != nil {
			return nil, apperrors.NewStoreError("failed to scan cheque row", err)
		}
		modelCheques = append(modelCheques, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("error iterating cheque rows", err)
	}

	return mapping.ToDomainChequeSlice(modelCheques), nil
}

func (r *SQLiteChequeRepository) SetChequeStatus(ctx context.Context, chequeID int64, status domain.ChequeStatus) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE cheques SET status = ? WHERE cheque_id = ?`, string(status), chequeID)
	if err != nil {
		return apperrors.NewStoreError(fmt.Sprintf("failed to update cheque %d", chequeID), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewStoreError(fmt.Sprintf("failed to update cheque %d", chequeID), err)
	}
	if affected == 0 {
		return fmt.Errorf("cheque %d: %w", chequeID, apperrors.ErrNotFound)
	}
	return nil
}
