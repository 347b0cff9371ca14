package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ForecastLookbackMonths is how many recent months the moving average uses.
const ForecastLookbackMonths = 3

// PredictNextPeriod estimates next month's sales per shop as the mean of the
// shop's most recent ForecastLookbackMonths monthly totals, or of all its
// months when it has fewer. Transactions dated after asOf are ignored; a zero
// asOf uses everything. Shops without transactions are absent from the result.
//
// This is a naive moving average: no seasonality, trend or confidence bounds.
func PredictNextPeriod(transactions []domain.Transaction, asOf time.Time) map[string]decimal.Decimal {
	monthly := make(map[string]map[string]decimal.Decimal)
	var cutoff time.Time
	if !asOf.IsZero() {
		cutoff = domain.BusinessDate(asOf)
	}
	for _, txn := range transactions {
		if !cutoff.IsZero() && txn.Date.After(cutoff) {
			continue
		}
		months, ok := monthly[txn.ShopName]
		if !ok {
			months = make(map[string]decimal.Decimal)
			monthly[txn.ShopName] = months
		}
		m := MonthKey(txn.Date)
		months[m] = months[m].Add(txn.Sales)
	}

	predictions := make(map[string]decimal.Decimal, len(monthly))
	for shop, months := range monthly {
		keys := make([]string, 0, len(months))
		for m := range months {
			keys = append(keys, m)
		}
		sort.Strings(keys)
		if len(keys) > ForecastLookbackMonths {
			keys = keys[len(keys)-ForecastLookbackMonths:]
		}

		sum := decimal.Zero
		for _, m := range keys {
			sum = sum.Add(months[m])
		}
		predictions[shop] = sum.Div(decimal.NewFromInt(int64(len(keys))))
	}
	return predictions
}

// NextPeriodLabel names the month following asOf.
func NextPeriodLabel(asOf time.Time) string {
	return MonthKey(domain.MonthStart(asOf).AddDate(0, 1, 0))
}
