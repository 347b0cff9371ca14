package accounting_test

import (
	"time"

	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sale(shop string, on time.Time, sales string) domain.Transaction {
	return domain.Transaction{
		ShopName:    shop,
		Date:        on,
		Sales:       dec(sales),
		Cost:        decimal.Zero,
		CashOut:     decimal.Zero,
		BankDeposit: decimal.Zero,
		Expenses:    domain.Expenses{},
	}
}
