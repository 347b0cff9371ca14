package accounting

import (
	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Derive computes the per-entry figures of a transaction. Nothing is rounded
// and remaining cash may go negative.
func Derive(txn domain.Transaction) domain.Derived {
	expenseTotal := txn.Expenses.Total()
	gross := txn.Sales.Sub(txn.Cost)
	return domain.Derived{
		GrossProfit:   gross,
		ExpenseTotal:  expenseTotal,
		NetProfit:     gross.Sub(expenseTotal),
		RemainingCash: txn.Sales.Sub(txn.CashOut).Sub(expenseTotal).Sub(txn.BankDeposit),
	}
}

// TotalDeposits sums bank_deposit over every transaction given.
func TotalDeposits(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		total = total.Add(txn.BankDeposit)
	}
	return total
}

// PendingChequeTotal sums the amounts of cheques still Pending. Cleared and
// Bounced cheques are ignored; a bounced cheque does not reverse any deposit.
func PendingChequeTotal(cheques []domain.Cheque) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for _, c := range cheques {
		if c.Status != domain.ChequePending {
			continue
		}
		total = total.Add(c.Amount)
		count++
	}
	return total, count
}

// BankBalance is deposits less the cheques that are still to be presented.
func BankBalance(totalDeposits, pendingChequeTotal decimal.Decimal) decimal.Decimal {
	return totalDeposits.Sub(pendingChequeTotal)
}

// Percentage returns part/whole*100 rounded to 2 places, or zero when whole
// is zero.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}

var hundred = decimal.NewFromInt(100)
