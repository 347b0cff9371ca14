package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/SscSPs/shopbooks/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// The expenses mapping is encoded as its flat JSON object.
func ToModelTransaction(d domain.Transaction) (models.Transaction, error) {
	expenses, err := json.Marshal(d.Expenses)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to encode expenses: %w", err)
	}
	return models.Transaction{
		TransactionID: d.TransactionID,
		ShopName:      d.ShopName,
		Date:          domain.BusinessDate(d.Date),
		Sales:         d.Sales,
		Cost:          d.Cost,
		CashOut:       d.CashOut,
		Expenses:      string(expenses),
		BankDeposit:   d.BankDeposit,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	expenses, err := domain.ParseExpensesJSON(m.Expenses)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to decode expenses of transaction %d: %w", m.TransactionID, err)
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		ShopName:      m.ShopName,
		Date:          domain.BusinessDate(m.Date),
		Sales:         m.Sales,
		Cost:          m.Cost,
		CashOut:       m.CashOut,
		Expenses:      expenses,
		BankDeposit:   m.BankDeposit,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, error) {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		d, err := ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
