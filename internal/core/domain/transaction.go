package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Transaction is one day-book entry of a shop. Entries are append-only.
type Transaction struct {
	TransactionID int64           `json:"transactionID"` // Store-assigned, monotonic
	ShopName      string          `json:"shopName"`
	Date          time.Time       `json:"date"` // Business date, no time component
	Sales         decimal.Decimal `json:"sales"`
	Cost          decimal.Decimal `json:"cost"`
	CashOut       decimal.Decimal `json:"cashOut"`
	Expenses      Expenses        `json:"expenses"`
	BankDeposit   decimal.Decimal `json:"bankDeposit"`
	AuditFields
}

// Validate checks the invariants every stored transaction satisfies.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ShopName) == "" {
		return apperrors.Validationf("shop name is required")
	}
	if t.Date.IsZero() {
		return apperrors.Validationf("date is required")
	}
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"sales", t.Sales},
		{"cost", t.Cost},
		{"cash_out", t.CashOut},
		{"bank_deposit", t.BankDeposit},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return apperrors.Validationf("%s must not be negative (got %s)", a.name, a.value.String())
		}
	}
	return t.Expenses.Validate()
}

// TransactionFilter narrows a listing. Zero values mean "no restriction";
// From and To are inclusive.
type TransactionFilter struct {
	ShopName string
	From     *time.Time
	To       *time.Time
}

// Matches reports whether t passes the filter.
func (f TransactionFilter) Matches(t Transaction) bool {
	if f.ShopName != "" && t.ShopName != f.ShopName {
		return false
	}
	if f.From != nil && t.Date.Before(BusinessDate(*f.From)) {
		return false
	}
	if f.To != nil && t.Date.After(BusinessDate(*f.To)) {
		return false
	}
	return true
}
