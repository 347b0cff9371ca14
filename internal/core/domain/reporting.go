package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Derived holds the figures computed from a single Transaction.
type Derived struct {
	GrossProfit   decimal.Decimal `json:"grossProfit"`
	ExpenseTotal  decimal.Decimal `json:"expenseTotal"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	RemainingCash decimal.Decimal `json:"remainingCash"`
}

// Granularity is a time-bucketing size.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity accepts day, week or month; empty defaults to def.
func ParseGranularity(s string, def Granularity) (Granularity, error) {
	switch Granularity(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return def, nil
	case GranularityDay:
		return GranularityDay, nil
	case GranularityWeek:
		return GranularityWeek, nil
	case GranularityMonth:
		return GranularityMonth, nil
	}
	return "", apperrors.Validationf("unknown granularity %q (use day, week or month)", s)
}

// MonthlyShopSales is the sales total of one shop in one calendar month.
type MonthlyShopSales struct {
	Month      string          `json:"month"` // YYYY-MM
	ShopName   string          `json:"shopName"`
	TotalSales decimal.Decimal `json:"totalSales"`
}

// PeriodShopSales is the sales total of one shop in one time bucket.
type PeriodShopSales struct {
	Period   time.Time       `json:"period"` // Bucket label date
	ShopName string          `json:"shopName"`
	Sales    decimal.Decimal `json:"sales"`
}

// ProfitTrendPoint sums one time bucket across all shops.
type ProfitTrendPoint struct {
	Period      time.Time       `json:"period"`
	Sales       decimal.Decimal `json:"sales"`
	Cost        decimal.Decimal `json:"cost"`
	GrossProfit decimal.Decimal `json:"grossProfit"`
	NetProfit   decimal.Decimal `json:"netProfit"`
}

// ShopPerformance compares one shop against the others. Margins and
// contributions are percentages rounded to 2 places; they are zero when the
// denominator is zero.
type ShopPerformance struct {
	ShopName          string          `json:"shopName"`
	EntryCount        int             `json:"entryCount"`
	TotalSales        decimal.Decimal `json:"totalSales"`
	AverageSales      decimal.Decimal `json:"averageSales"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	NetProfit         decimal.Decimal `json:"netProfit"`
	GrossMargin       decimal.Decimal `json:"grossMargin"`
	NetMargin         decimal.Decimal `json:"netMargin"`
	GrossContribution decimal.Decimal `json:"grossContribution"`
	NetContribution   decimal.Decimal `json:"netContribution"`
}

// DistributionBucket is one histogram bin over [Lower, Upper); the last bin
// is closed on both ends.
type DistributionBucket struct {
	Lower decimal.Decimal `json:"lower"`
	Upper decimal.Decimal `json:"upper"`
	Count int             `json:"count"`
}

// CategoryAmount is the total booked to one expense category.
type CategoryAmount struct {
	Category ExpenseCategory `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// SalesSummary holds the headline figures of a set of transactions.
type SalesSummary struct {
	EntryCount        int             `json:"entryCount"`
	TotalSales        decimal.Decimal `json:"totalSales"`
	TotalCost         decimal.Decimal `json:"totalCost"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	ExpenseTotal      decimal.Decimal `json:"expenseTotal"`
	NetProfit         decimal.Decimal `json:"netProfit"`
	AverageDailySales decimal.Decimal `json:"averageDailySales"`
	BestDay           time.Time       `json:"bestDay"`
	BestDaySales      decimal.Decimal `json:"bestDaySales"`
}

// DatedShopAmount is an amount for one shop on one business date.
type DatedShopAmount struct {
	Date     time.Time       `json:"date"`
	ShopName string          `json:"shopName"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthAmount is an amount for one calendar month.
type MonthAmount struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// DepositSummary describes bank deposits of a filtered set of transactions.
type DepositSummary struct {
	Total   decimal.Decimal   `json:"total"`
	ByDate  []DatedShopAmount `json:"byDate"`
	ByMonth []MonthAmount     `json:"byMonth"` // Most recent month first
}

// ChequeStatusTotal counts and sums cheques in one status.
type ChequeStatusTotal struct {
	Status ChequeStatus    `json:"status"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// Forecast is the next-period sales prediction per shop.
type Forecast struct {
	TargetPeriod string                     `json:"targetPeriod"` // YYYY-MM
	Predictions  map[string]decimal.Decimal `json:"predictions"`
}

// Dashboard combines the headline figures shown on the landing page.
type Dashboard struct {
	AsOf               time.Time          `json:"asOf"`
	HasData            bool               `json:"hasData"`
	Summary            SalesSummary       `json:"summary"`
	ThisMonthSales     decimal.Decimal    `json:"thisMonthSales"`
	BankBalance        decimal.Decimal    `json:"bankBalance"`
	PendingChequeTotal decimal.Decimal    `json:"pendingChequeTotal"`
	PendingChequeCount int                `json:"pendingChequeCount"`
	MonthlyPerformance []MonthlyShopSales `json:"monthlyPerformance"`
	Forecast           Forecast           `json:"forecast"`
}

// SalesReport is the analytics view over a filtered set of transactions.
type SalesReport struct {
	HasData          bool                 `json:"hasData"`
	Granularity      Granularity          `json:"granularity"`
	Summary          SalesSummary         `json:"summary"`
	SalesOverTime    []PeriodShopSales    `json:"salesOverTime"`
	ProfitTrend      []ProfitTrendPoint   `json:"profitTrend"`
	Shops            []ShopPerformance    `json:"shops"`
	ExpenseBreakdown []CategoryAmount     `json:"expenseBreakdown"`
	Distribution     []DistributionBucket `json:"distribution"`
}

// BankReport is the bank page view: deposits and cheque status.
type BankReport struct {
	Deposits           DepositSummary      `json:"deposits"`
	ChequeStatus       []ChequeStatusTotal `json:"chequeStatus"`
	PendingChequeTotal decimal.Decimal     `json:"pendingChequeTotal"`
	TotalDeposits      decimal.Decimal     `json:"totalDeposits"`
	BankBalance        decimal.Decimal     `json:"bankBalance"`
}
