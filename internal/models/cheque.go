package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cheque is one row of the cheques table.
type Cheque struct {
	ChequeID     int64           `json:"chequeID" db:"cheque_id"`
	Date         time.Time       `json:"date" db:"date"`
	ShopName     string          `json:"shopName" db:"shop_name"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Payee        string          `json:"payee" db:"payee"`
	Status       string          `json:"status" db:"status"`
	ChequeNumber string          `json:"chequeNumber" db:"cheque_number"`
	Bank         string          `json:"bank" db:"bank_name"`
}
