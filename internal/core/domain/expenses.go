package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ExpenseCategory is one of the fixed itemized expense keys.
type ExpenseCategory string

const (
	ExpenseSalary        ExpenseCategory = "salary"
	ExpenseRent          ExpenseCategory = "rent"
	ExpenseLightBill     ExpenseCategory = "light_bill"
	ExpenseWaterBill     ExpenseCategory = "water_bill"
	ExpensePhoneBill     ExpenseCategory = "phone_bill"
	ExpensePettyCash     ExpenseCategory = "petty_cash"
	ExpenseHome          ExpenseCategory = "home"
	ExpenseOtherExpenses ExpenseCategory = "other_expenses"
)

// DescriptionKey is the free-text key stored alongside the amounts.
const DescriptionKey = "description"

// ExpenseCategories lists the recognised categories in reporting order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseSalary,
	ExpenseRent,
	ExpenseLightBill,
	ExpenseWaterBill,
	ExpensePhoneBill,
	ExpensePettyCash,
	ExpenseHome,
	ExpenseOtherExpenses,
}

// IsValid reports whether c is a recognised category.
func (c ExpenseCategory) IsValid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Expenses is the itemized expense mapping of a Transaction. Categories absent
// from Amounts count as zero.
type Expenses struct {
	Amounts     map[ExpenseCategory]decimal.Decimal
	Description string
}

// NewExpenses builds an Expenses value from plain amounts.
func NewExpenses(amounts map[ExpenseCategory]decimal.Decimal, description string) Expenses {
	copied := make(map[ExpenseCategory]decimal.Decimal, len(amounts))
	for k, v := range amounts {
		copied[k] = v
	}
	return Expenses{Amounts: copied, Description: description}
}

// Amount returns the amount booked for c, or zero.
func (e Expenses) Amount(c ExpenseCategory) decimal.Decimal {
	if e.Amounts == nil {
		return decimal.Zero
	}
	v, ok := e.Amounts[c]
	if !ok {
		return decimal.Zero
	}
	return v
}

// Total sums the recognised categories only.
func (e Expenses) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range ExpenseCategories {
		total = total.Add(e.Amount(c))
	}
	return total
}

// Validate rejects negative category amounts.
func (e Expenses) Validate() error {
	for _, c := range ExpenseCategories {
		if e.Amount(c).IsNegative() {
			return apperrors.Validationf("expense %s must not be negative", c)
		}
	}
	return nil
}

// MarshalJSON writes the flat object form used in storage and imports:
// {"salary": 1000, ..., "description": "..."}.
func (e Expenses) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, c := range ExpenseCategories {
		v, ok := e.Amounts[c]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&buf, "%q:%s", string(c), v.String())
	}
	if e.Description != "" {
		if !first {
			buf.WriteByte(',')
		}
		desc, err := json.Marshal(e.Description)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%q:%s", DescriptionKey, desc)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts the flat object form. Unknown keys are dropped;
// a recognised category holding something other than a number is a
// malformed mapping.
func (e *Expenses) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return apperrors.Validationf("expenses must be a JSON object: %v", err)
	}

	out := Expenses{Amounts: make(map[ExpenseCategory]decimal.Decimal)}
	for key, value := range raw {
		if key == DescriptionKey {
			var desc string
			if err := json.Unmarshal(value, &desc); err == nil {
				out.Description = desc
			}
			continue
		}
		category := ExpenseCategory(key)
		if !category.IsValid() {
			continue
		}
		amount, err := parseExpenseAmount(value)
		if err != nil {
			return apperrors.Validationf("expense %s: %v", key, err)
		}
		out.Amounts[category] = amount
	}
	*e = out
	return nil
}

// ParseExpensesJSON decodes a stored or imported expenses column.
func ParseExpensesJSON(s string) (Expenses, error) {
	var e Expenses
	if strings.TrimSpace(s) == "" {
		return Expenses{Amounts: map[ExpenseCategory]decimal.Decimal{}}, nil
	}
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		return Expenses{}, err
	}
	return e, nil
}

func parseExpenseAmount(value json.RawMessage) (decimal.Decimal, error) {
	trimmed := bytes.TrimSpace(value)
	if bytes.Equal(trimmed, []byte("null")) {
		return decimal.Zero, nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return decimal.Zero, err
		}
		if strings.TrimSpace(s) == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return decimal.Zero, fmt.Errorf("not a number: %q", s)
		}
		return d, nil
	}
	d, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %s", trimmed)
	}
	return d, nil
}
