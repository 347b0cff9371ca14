package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
	portsrepo "github.com/SscSPs/shopbooks/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/SscSPs/shopbooks/internal/dto"
)

type chequeService struct {
	BaseService
	chequeRepo portsrepo.ChequeRepositoryFacade
	shops      []string
}

// ChequeServiceOption is a functional option for configuring the cheque service
type ChequeServiceOption func(*chequeService)

// WithChequeShops restricts which shops may issue a cheque. Without it any
// non-empty shop name is accepted.
func WithChequeShops(names []string) ChequeServiceOption {
	return func(s *chequeService) {
		s.shops = append([]string(nil), names...)
	}
}

// NewChequeService creates a new cheque service with the provided options
func NewChequeService(repo portsrepo.ChequeRepositoryFacade, options ...ChequeServiceOption) portssvc.ChequeSvcFacade {
	svc := &chequeService{chequeRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ChequeSvcFacade = (*chequeService)(nil)

func (s *chequeService) IssueCheque(ctx context.Context, req dto.CreateChequeRequest, actor string) (*domain.Cheque, error) {
	if actor == "" {
		return nil, apperrors.ErrUnauthorized
	}
	date, err := domain.ParseBusinessDate(req.Date)
	if err != nil {
		return nil, err
	}
	cheque := domain.Cheque{
		Date:         date,
		ShopName:     strings.TrimSpace(req.ShopName),
		Amount:       req.Amount,
		Payee:        strings.TrimSpace(req.Payee),
		Status:       domain.ChequePending,
		ChequeNumber: strings.TrimSpace(req.ChequeNumber),
		Bank:         strings.TrimSpace(req.Bank),
	}
	if err := checkShop(s.shops, cheque.ShopName); err != nil {
		return nil, err
	}
	if err := cheque.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.chequeRepo.AppendCheque(ctx, cheque)
	if err != nil {
		s.LogError(ctx, err, "Failed to append cheque", slog.String("cheque_number", cheque.ChequeNumber))
		return nil, fmt.Errorf("failed to issue cheque: %w", err)
	}

	s.LogInfo(ctx, "Cheque issued",
		slog.Int64("cheque_id", saved.ChequeID),
		slog.String("shop", saved.ShopName),
		slog.String("amount", saved.Amount.String()),
		slog.String("actor", actor))
	return saved, nil
}

func (s *chequeService) ListCheques(ctx context.Context, status *domain.ChequeStatus) ([]domain.Cheque, error) {
	cheques, err := s.chequeRepo.ListCheques(ctx, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cheques")
		return nil, fmt.Errorf("failed to list cheques: %w", err)
	}
	if cheques == nil {
		return []domain.Cheque{}, nil
	}
	return cheques, nil
}

func (s *chequeService) UpdateChequeStatus(ctx context.Context, chequeID int64, status domain.ChequeStatus, actor string) error {
	if actor == "" {
		return apperrors.ErrUnauthorized
	}
	if err := s.chequeRepo.SetChequeStatus(ctx, chequeID, status); err != nil {
		s.LogError(ctx, err, "Failed to update cheque status", slog.Int64("cheque_id", chequeID))
		return fmt.Errorf("failed to update cheque %d: %w", chequeID, err)
	}
	s.LogInfo(ctx, "Cheque status updated",
		slog.Int64("cheque_id", chequeID),
		slog.String("status", string(status)),
		slog.String("actor", actor))
	return nil
}
