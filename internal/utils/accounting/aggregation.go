package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyPerformanceWindow is how far back the monthly performance view looks.
const MonthlyPerformanceWindow = 180 * 24 * time.Hour

// DefaultDistributionBins is the histogram size used when the caller has no preference.
const DefaultDistributionBins = 20

// Every aggregate returns ok=false when there is nothing to aggregate.

// Summarize computes the headline totals of a set of transactions.
func Summarize(transactions []domain.Transaction) (domain.SalesSummary, bool) {
	if len(transactions) == 0 {
		return domain.SalesSummary{}, false
	}

	s := domain.SalesSummary{
		EntryCount:   len(transactions),
		TotalSales:   decimal.Zero,
		TotalCost:    decimal.Zero,
		GrossProfit:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
		NetProfit:    decimal.Zero,
	}
	daily := make(map[time.Time]decimal.Decimal)
	for _, txn := range transactions {
		d := Derive(txn)
		s.TotalSales = s.TotalSales.Add(txn.Sales)
		s.TotalCost = s.TotalCost.Add(txn.Cost)
		s.GrossProfit = s.GrossProfit.Add(d.GrossProfit)
		s.ExpenseTotal = s.ExpenseTotal.Add(d.ExpenseTotal)
		s.NetProfit = s.NetProfit.Add(d.NetProfit)

		day := domain.BusinessDate(txn.Date)
		daily[day] = daily[day].Add(txn.Sales)
	}

	days := make([]time.Time, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	s.BestDay = days[0]
	s.BestDaySales = daily[days[0]]
	for _, day := range days[1:] {
		if daily[day].GreaterThan(s.BestDaySales) {
			s.BestDay = day
			s.BestDaySales = daily[day]
		}
	}
	s.AverageDailySales = s.TotalSales.Div(decimal.NewFromInt(int64(len(days))))
	return s, true
}

// SalesInMonth sums the sales dated in the calendar month of ref.
func SalesInMonth(transactions []domain.Transaction, ref time.Time) decimal.Decimal {
	key := MonthKey(ref)
	total := decimal.Zero
	for _, txn := range transactions {
		if MonthKey(txn.Date) == key {
			total = total.Add(txn.Sales)
		}
	}
	return total
}

// MonthlyPerformance sums sales per (calendar month, shop) over the trailing
// window ending at now.
func MonthlyPerformance(transactions []domain.Transaction, now time.Time) ([]domain.MonthlyShopSales, bool) {
	cutoff := domain.BusinessDate(now.Add(-MonthlyPerformanceWindow))

	type key struct{ month, shop string }
	totals := make(map[key]decimal.Decimal)
	for _, txn := range transactions {
		if txn.Date.Before(cutoff) {
			continue
		}
		k := key{MonthKey(txn.Date), txn.ShopName}
		totals[k] = totals[k].Add(txn.Sales)
	}
	if len(totals) == 0 {
		return []domain.MonthlyShopSales{}, false
	}

	out := make([]domain.MonthlyShopSales, 0, len(totals))
	for k, v := range totals {
		out = append(out, domain.MonthlyShopSales{Month: k.month, ShopName: k.shop, TotalSales: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].ShopName < out[j].ShopName
	})
	return out, true
}

// SalesByPeriod sums sales per (bucket, shop).
func SalesByPeriod(transactions []domain.Transaction, g domain.Granularity) ([]domain.PeriodShopSales, bool) {
	if len(transactions) == 0 {
		return []domain.PeriodShopSales{}, false
	}

	type key struct {
		period time.Time
		shop   string
	}
	totals := make(map[key]decimal.Decimal)
	for _, txn := range transactions {
		k := key{BucketLabel(txn.Date, g), txn.ShopName}
		totals[k] = totals[k].Add(txn.Sales)
	}

	out := make([]domain.PeriodShopSales, 0, len(totals))
	for k, v := range totals {
		out = append(out, domain.PeriodShopSales{Period: k.period, ShopName: k.shop, Sales: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Period.Equal(out[j].Period) {
			return out[i].Period.Before(out[j].Period)
		}
		return out[i].ShopName < out[j].ShopName
	})
	return out, true
}

// ProfitTrend sums sales, cost and both profits per bucket across shops.
func ProfitTrend(transactions []domain.Transaction, g domain.Granularity) ([]domain.ProfitTrendPoint, bool) {
	if len(transactions) == 0 {
		return []domain.ProfitTrendPoint{}, false
	}

	points := make(map[time.Time]*domain.ProfitTrendPoint)
	for _, txn := range transactions {
		period := BucketLabel(txn.Date, g)
		p, ok := points[period]
		if !ok {
			p = &domain.ProfitTrendPoint{Period: period}
			points[period] = p
		}
		d := Derive(txn)
		p.Sales = p.Sales.Add(txn.Sales)
		p.Cost = p.Cost.Add(txn.Cost)
		p.GrossProfit = p.GrossProfit.Add(d.GrossProfit)
		p.NetProfit = p.NetProfit.Add(d.NetProfit)
	}

	out := make([]domain.ProfitTrendPoint, 0, len(points))
	for _, p := range points {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period.Before(out[j].Period) })
	return out, true
}

// CompareShops computes per-shop totals, means, margins and contributions.
// A zero denominator yields a zero percentage.
func CompareShops(transactions []domain.Transaction) ([]domain.ShopPerformance, bool) {
	if len(transactions) == 0 {
		return []domain.ShopPerformance{}, false
	}

	byShop := make(map[string]*domain.ShopPerformance)
	totalGross := decimal.Zero
	totalNet := decimal.Zero
	for _, txn := range transactions {
		sp, ok := byShop[txn.ShopName]
		if !ok {
			sp = &domain.ShopPerformance{ShopName: txn.ShopName}
			byShop[txn.ShopName] = sp
		}
		d := Derive(txn)
		sp.EntryCount++
		sp.TotalSales = sp.TotalSales.Add(txn.Sales)
		sp.GrossProfit = sp.GrossProfit.Add(d.GrossProfit)
		sp.NetProfit = sp.NetProfit.Add(d.NetProfit)
		totalGross = totalGross.Add(d.GrossProfit)
		totalNet = totalNet.Add(d.NetProfit)
	}

	out := make([]domain.ShopPerformance, 0, len(byShop))
	for _, sp := range byShop {
		sp.AverageSales = sp.TotalSales.Div(decimal.NewFromInt(int64(sp.EntryCount)))
		sp.GrossMargin = Percentage(sp.GrossProfit, sp.TotalSales)
		sp.NetMargin = Percentage(sp.NetProfit, sp.TotalSales)
		sp.GrossContribution = Percentage(sp.GrossProfit, totalGross)
		sp.NetContribution = Percentage(sp.NetProfit, totalNet)
		out = append(out, *sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ShopName < out[j].ShopName })
	return out, true
}

// SalesDistribution bins per-entry sales into equal-width buckets between
// the smallest and largest value. bins <= 0 uses DefaultDistributionBins.
func SalesDistribution(transactions []domain.Transaction, bins int) ([]domain.DistributionBucket, bool) {
	if len(transactions) == 0 {
		return []domain.DistributionBucket{}, false
	}
	if bins <= 0 {
		bins = DefaultDistributionBins
	}

	lo, hi := transactions[0].Sales, transactions[0].Sales
	for _, txn := range transactions[1:] {
		lo = decimal.Min(lo, txn.Sales)
		hi = decimal.Max(hi, txn.Sales)
	}
	width := hi.Sub(lo).Div(decimal.NewFromInt(int64(bins)))
	// A spread below the division precision collapses to one bucket.
	if width.IsZero() {
		return []domain.DistributionBucket{{Lower: lo, Upper: hi, Count: len(transactions)}}, true
	}
	out := make([]domain.DistributionBucket, bins)
	for i := range out {
		out[i].Lower = lo.Add(width.Mul(decimal.NewFromInt(int64(i))))
		out[i].Upper = lo.Add(width.Mul(decimal.NewFromInt(int64(i + 1))))
	}
	out[bins-1].Upper = hi

	for _, txn := range transactions {
		idx := int(txn.Sales.Sub(lo).Div(width).Floor().IntPart())
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		out[idx].Count++
	}
	return out, true
}

// ExpenseBreakdown totals each category, in reporting order, skipping
// categories with nothing booked.
func ExpenseBreakdown(transactions []domain.Transaction) ([]domain.CategoryAmount, bool) {
	out := []domain.CategoryAmount{}
	for _, c := range domain.ExpenseCategories {
		total := decimal.Zero
		for _, txn := range transactions {
			total = total.Add(txn.Expenses.Amount(c))
		}
		if total.IsPositive() {
			out = append(out, domain.CategoryAmount{Category: c, Amount: total})
		}
	}
	return out, len(out) > 0
}

// SummarizeDeposits totals bank deposits, per (date, shop) and per month.
func SummarizeDeposits(transactions []domain.Transaction) (domain.DepositSummary, bool) {
	summary := domain.DepositSummary{
		Total:   decimal.Zero,
		ByDate:  []domain.DatedShopAmount{},
		ByMonth: []domain.MonthAmount{},
	}
	if len(transactions) == 0 {
		return summary, false
	}

	type key struct {
		date time.Time
		shop string
	}
	byDate := make(map[key]decimal.Decimal)
	byMonth := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		summary.Total = summary.Total.Add(txn.BankDeposit)
		k := key{domain.BusinessDate(txn.Date), txn.ShopName}
		byDate[k] = byDate[k].Add(txn.BankDeposit)
		m := MonthKey(txn.Date)
		byMonth[m] = byMonth[m].Add(txn.BankDeposit)
	}

	for k, v := range byDate {
		summary.ByDate = append(summary.ByDate, domain.DatedShopAmount{Date: k.date, ShopName: k.shop, Amount: v})
	}
	sort.Slice(summary.ByDate, func(i, j int) bool {
		a, b := summary.ByDate[i], summary.ByDate[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ShopName < b.ShopName
	})

	for m, v := range byMonth {
		summary.ByMonth = append(summary.ByMonth, domain.MonthAmount{Month: m, Amount: v})
	}
	sort.Slice(summary.ByMonth, func(i, j int) bool { return summary.ByMonth[i].Month > summary.ByMonth[j].Month })
	return summary, true
}

// ChequeStatusSummary counts and sums cheques per status, always listing
// every status in display order.
func ChequeStatusSummary(cheques []domain.Cheque) ([]domain.ChequeStatusTotal, bool) {
	out := make([]domain.ChequeStatusTotal, len(domain.ChequeStatuses))
	index := make(map[domain.ChequeStatus]int, len(domain.ChequeStatuses))
	for i, st := range domain.ChequeStatuses {
		out[i] = domain.ChequeStatusTotal{Status: st, Amount: decimal.Zero}
		index[st] = i
	}
	for _, c := range cheques {
		i, ok := index[c.Status]
		if !ok {
			continue
		}
		out[i].Count++
		out[i].Amount = out[i].Amount.Add(c.Amount)
	}
	return out, len(cheques) > 0
}
