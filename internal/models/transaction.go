package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one row of the transactions table.
type Transaction struct {
	TransactionID int64           `json:"transactionID" db:"transaction_id"`
	ShopName      string          `json:"shopName" db:"shop_name"`
	Date          time.Time       `json:"date" db:"date"`
	Sales         decimal.Decimal `json:"sales" db:"sales"`
	Cost          decimal.Decimal `json:"cost" db:"cost"`
	CashOut       decimal.Decimal `json:"cashOut" db:"cash_out"`
	Expenses      string          `json:"expenses" db:"expenses"` // JSON object text
	BankDeposit   decimal.Decimal `json:"bankDeposit" db:"bank_deposit"`
	AuditFields
}
