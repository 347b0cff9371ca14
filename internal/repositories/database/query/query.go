// Package query builds the WHERE clauses shared by the SQL record stores.
package query

import (
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/shopbooks/internal/core/domain"
)

// Dialect describes how a backend spells bind parameters and dates.
type Dialect struct {
	// Placeholder returns the marker for the n-th (1-based) argument.
	Placeholder func(n int) string
	// Date converts a business date into the bound argument value.
	Date func(t time.Time) any
}

// Postgres numbers its parameters and binds dates natively.
var Postgres = Dialect{
	Placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	Date:        func(t time.Time) any { return domain.BusinessDate(t) },
}

// SQLite uses positional parameters and stores dates as YYYY-MM-DD text.
var SQLite = Dialect{
	Placeholder: func(int) string { return "?" },
	Date:        func(t time.Time) any { return domain.BusinessDate(t).Format(domain.DateLayout) },
}

// Where accumulates conditions joined by AND.
type Where struct {
	dialect Dialect
	conds   []string
	args    []any
}

// NewWhere starts an empty clause for d.
func NewWhere(d Dialect) *Where {
	return &Where{dialect: d}
}

// Add appends "column op ?" bound to value.
func (w *Where) Add(column, op string, value any) *Where {
	w.args = append(w.args, value)
	w.conds = append(w.conds, column+" "+op+" "+w.dialect.Placeholder(len(w.args)))
	return w
}

// String renders " WHERE ..." or the empty string.
func (w *Where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// Args returns the bound values in order.
func (w *Where) Args() []any {
	return w.args
}

// TransactionFilter renders the conditions of a transaction listing.
func TransactionFilter(d Dialect, f domain.TransactionFilter) *Where {
	w := NewWhere(d)
	if f.ShopName != "" {
		w.Add("shop_name", "=", f.ShopName)
	}
	if f.From != nil {
		w.Add("date", ">=", d.Date(*f.From))
	}
	if f.To != nil {
		w.Add("date", "<=", d.Date(*f.To))
	}
	return w
}

// ChequeStatus renders the optional status condition of a cheque listing.
func ChequeStatus(d Dialect, status *domain.ChequeStatus) *Where {
	w := NewWhere(d)
	if status != nil {
		w.Add("status", "=", string(*status))
	}
	return w
}
