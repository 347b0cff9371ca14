package dto

import (
	"time"

	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data for one day-book entry.
// Omitted amounts are zero.
type CreateTransactionRequest struct {
	ShopName    string          `json:"shopName" binding:"required"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Sales       decimal.Decimal `json:"sales" swaggertype:"string"`
	Cost        decimal.Decimal `json:"cost" swaggertype:"string"`
	CashOut     decimal.Decimal `json:"cashOut" swaggertype:"string"`
	Expenses    domain.Expenses `json:"expenses" swaggertype:"object"`
	BankDeposit decimal.Decimal `json:"bankDeposit" swaggertype:"string"`
}

// TransactionResponse is an entry together with its derived figures.
type TransactionResponse struct {
	domain.Transaction
	Derived domain.Derived `json:"derived"`
}

// ListTransactionsResponse wraps a listing of entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// ToTransactionResponse pairs an entry with its derived figures.
func ToTransactionResponse(txn domain.Transaction, derived domain.Derived) TransactionResponse {
	return TransactionResponse{Transaction: txn, Derived: derived}
}

// ListTransactionsParams defines query parameters for listing entries.
// RecentDays, when set, overrides From with asOf minus that many days.
type ListTransactionsParams struct {
	FilterParams
	RecentDays int `form:"recentDays" binding:"omitempty,min=1,max=3650"`
}

// FilterParams are the query parameters shared by listings and reports.
type FilterParams struct {
	Shop string `form:"shop"`
	From string `form:"from"` // YYYY-MM-DD, inclusive
	To   string `form:"to"`   // YYYY-MM-DD, inclusive
	AsOf string `form:"asOf"` // YYYY-MM-DD, defaults to today
}

// ToFilter parses the date parameters into a domain filter.
func (p FilterParams) ToFilter() (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{ShopName: p.Shop}
	if p.From != "" {
		from, err := domain.ParseBusinessDate(p.From)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if p.To != "" {
		to, err := domain.ParseBusinessDate(p.To)
		if err != nil {
			return filter, err
		}
		filter.To = &to
	}
	return filter, nil
}

// AsOfDate parses AsOf, falling back to the business date of now.
func (p FilterParams) AsOfDate(now time.Time) (time.Time, error) {
	if p.AsOf == "" {
		return domain.BusinessDate(now), nil
	}
	return domain.ParseBusinessDate(p.AsOf)
}

// ToFilter applies RecentDays on top of the shared filter parameters.
func (p ListTransactionsParams) ToFilter(now time.Time) (domain.TransactionFilter, error) {
	filter, err := p.FilterParams.ToFilter()
	if err != nil || p.RecentDays == 0 {
		return filter, err
	}
	asOf, err := p.AsOfDate(now)
	if err != nil {
		return filter, err
	}
	from := asOf.AddDate(0, 0, -p.RecentDays)
	filter.From = &from
	if filter.To == nil {
		filter.To = &asOf
	}
	return filter, nil
}
