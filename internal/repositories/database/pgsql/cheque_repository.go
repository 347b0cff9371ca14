package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/shopbooks/internal/core/ports/repositories"
	"github.com/SscSPs/shopbooks/internal/models"
	"github.com/SscSPs/shopbooks/internal/repositories/database/query"
	"github.com/SscSPs/shopbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChequeRepository struct {
	BaseRepository
}

func newPgxChequeRepository(pool *pgxpool.Pool) *PgxChequeRepository {
	return &PgxChequeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChequeRepositoryFacade = (*PgxChequeRepository)(nil)

func (r *PgxChequeRepository) AppendCheque(ctx context.Context, cheque domain.Cheque) (*domain.Cheque, error) {
	cheque.Status = domain.ChequePending
	if err := cheque.Validate(); err != nil {
		return nil, err
	}

	m := mapping.ToModelCheque(cheque)
	stmt := `
		INSERT INTO cheques (date, shop_name, amount, payee, status, cheque_number, bank_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING cheque_id;
	`
	err := r.Pool.QueryRow(ctx, stmt,
		m.Date,
		m.ShopName,
		m.Amount,
		m.Payee,
		m.Status,
		m.ChequeNumber,
		m.Bank,
	).Scan(&m.ChequeID)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to insert cheque", err)
	}

	saved := mapping.ToDomainCheque(m)
	return &saved, nil
}

func (r *PgxChequeRepository) ListCheques(ctx context.Context, status *domain.ChequeStatus) ([]domain.Cheque, error) {
	where := query.ChequeStatus(query.Postgres, status)
	sql := `
		SELECT cheque_id, date, shop_name, amount, payee, status, cheque_number, bank_name
		FROM cheques` + where.String() + `
		ORDER BY date DESC, cheque_id DESC`

	rows, err := r.Pool.Query(ctx, sql, where.Args()...)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query cheques", err)
	}
	defer rows.Close()

	modelCheques := []models.Cheque{}
	for rows.Next() {
		var m models.Cheque
		if err := rows.Scan(&m.ChequeID, &m.Date, &m.ShopName, &m.Amount, &m.Payee, &m.Status, &m.ChequeNumber, &m.Bank); err != nil {
			return nil, apperrors.NewStoreError("failed to scan cheque row", err)
		}
		modelCheques = append(modelCheques, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("error iterating cheque rows", err)
	}

	return mapping.ToDomainChequeSlice(modelCheques), nil
}

func (r *PgxChequeRepository) SetChequeStatus(ctx context.Context, chequeID int64, status domain.ChequeStatus) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE cheques SET status = $1 WHERE cheque_id = $2`, string(status), chequeID)
	if err != nil {
		return apperrors.NewStoreError(fmt.Sprintf("failed to update cheque %d", chequeID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("cheque %d: %w", chequeID, apperrors.ErrNotFound)
	}
	return nil
}
