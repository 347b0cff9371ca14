package repositories

import (
	"context"

	"github.com/SscSPs/shopbooks/internal/core/domain"
)

// ChequeReader defines read operations for issued cheques
type ChequeReader interface {
	// ListCheques returns cheques, newest first, optionally restricted to one status.
	ListCheques(ctx context.Context, status *domain.ChequeStatus) ([]domain.Cheque, error)
}

// ChequeWriter defines write operations for issued cheques
type ChequeWriter interface {
	// AppendCheque persists a new cheque. The stored status is always Pending.
	AppendCheque(ctx context.Context, cheque domain.Cheque) (*domain.Cheque, error)

	// SetChequeStatus moves a cheque to status. Returns apperrors.ErrNotFound for an unknown id.
	SetChequeStatus(ctx context.Context, chequeID int64, status domain.ChequeStatus) error
}

// ChequeRepositoryFacade combines all cheque-related repository interfaces
type ChequeRepositoryFacade interface {
	ChequeReader
	ChequeWriter
}
