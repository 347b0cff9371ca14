package services

import (
	"context"

	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/SscSPs/shopbooks/internal/dto"
)

// ChequeSvcFacade defines operations on issued cheques
type ChequeSvcFacade interface {
	// IssueCheque records a new Pending cheque.
	IssueCheque(ctx context.Context, req dto.CreateChequeRequest, actor string) (*domain.Cheque, error)

	// ListCheques returns cheques newest first, optionally restricted to one status.
	ListCheques(ctx context.Context, status *domain.ChequeStatus) ([]domain.Cheque, error)

	// UpdateChequeStatus moves a cheque to any status.
	UpdateChequeStatus(ctx context.Context, chequeID int64, status domain.ChequeStatus, actor string) error
}
