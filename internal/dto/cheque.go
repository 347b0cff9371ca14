package dto

import (
	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateChequeRequest defines the data for issuing a cheque.
type CreateChequeRequest struct {
	Date         string          `json:"date" binding:"required"` // YYYY-MM-DD
	ShopName     string          `json:"shopName" binding:"required"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string"`
	Payee        string          `json:"payee" binding:"required"`
	ChequeNumber string          `json:"chequeNumber" binding:"required"`
	Bank         string          `json:"bank"`
}

// UpdateChequeStatusRequest moves a cheque to Pending, Cleared or Bounced.
type UpdateChequeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListChequesParams filters the cheque listing.
type ListChequesParams struct {
	Status string `form:"status"`
}

// ListChequesResponse wraps a listing of cheques.
type ListChequesResponse struct {
	Cheques []domain.Cheque `json:"cheques"`
	Count   int             `json:"count"`
}
