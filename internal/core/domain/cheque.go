package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ChequeStatus is the lifecycle state of an issued cheque.
type ChequeStatus string

const (
	ChequePending ChequeStatus = "Pending"
	ChequeCleared ChequeStatus = "Cleared"
	ChequeBounced ChequeStatus = "Bounced"
)

// ChequeStatuses lists every status in display order.
var ChequeStatuses = []ChequeStatus{ChequePending, ChequeCleared, ChequeBounced}

// ParseChequeStatus matches s case-insensitively against the known statuses.
func ParseChequeStatus(s string) (ChequeStatus, error) {
	for _, st := range ChequeStatuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", apperrors.Validationf("unknown cheque status %q", s)
}

// Cheque is a cheque issued by a shop. Any status may move to any other.
type Cheque struct {
	ChequeID     int64           `json:"chequeID"`
	Date         time.Time       `json:"date"`
	ShopName     string          `json:"shopName"`
	Amount       decimal.Decimal `json:"amount"`
	Payee        string          `json:"payee"`
	Status       ChequeStatus    `json:"status"`
	ChequeNumber string          `json:"chequeNumber"`
	Bank         string          `json:"bank"`
}

// Validate checks the fields required to record a cheque.
func (c Cheque) Validate() error {
	if !c.Amount.IsPositive() {
		return apperrors.Validationf("cheque amount must be positive (got %s)", c.Amount.String())
	}
	if strings.TrimSpace(c.Payee) == "" {
		return apperrors.Validationf("payee is required")
	}
	if strings.TrimSpace(c.ChequeNumber) == "" {
		return apperrors.Validationf("cheque number is required")
	}
	if strings.TrimSpace(c.ShopName) == "" {
		return apperrors.Validationf("shop name is required")
	}
	if c.Date.IsZero() {
		return apperrors.Validationf("date is required")
	}
	return nil
}
