// Package reports renders printable views of the books.
package reports

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

const currencyPrefix = "Rs. "

// DashboardPDF renders the dashboard summary as a single A4 page.
func DashboardPDF(d *domain.Dashboard) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Shop Management Summary", false)
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Shop Management Summary")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "As of "+d.AsOf.Format(domain.DateLayout))
	pdf.Ln(10)
	pdf.SetTextColor(20, 20, 20)

	if !d.HasData {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.Cell(0, 8, "No transactions recorded yet.")
		pdf.Ln(10)
	}

	section(pdf, "Key figures")
	keyFigures := []struct {
		label string
		value string
	}{
		{"Total sales", money(d.Summary.TotalSales)},
		{"Gross profit", money(d.Summary.GrossProfit)},
		{"Net profit", money(d.Summary.NetProfit)},
		{"Sales this month", money(d.ThisMonthSales)},
		{"Bank balance", money(d.BankBalance)},
		{"Pending cheques", fmt.Sprintf("%s (%d)", money(d.PendingChequeTotal), d.PendingChequeCount)},
	}
	pdf.SetFont("Helvetica", "", 11)
	for _, kf := range keyFigures {
		pdf.CellFormat(70, 8, kf.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, kf.value, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	if len(d.MonthlyPerformance) > 0 {
		section(pdf, "Monthly performance (last 180 days)")
		header(pdf, []string{"Month", "Shop", "Sales"}, []float64{40, 70, 50})
		pdf.SetFont("Helvetica", "", 10)
		for _, m := range d.MonthlyPerformance {
			pdf.CellFormat(40, 7, m.Month, "1", 0, "C", false, 0, "")
			pdf.CellFormat(70, 7, m.ShopName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 7, money(m.TotalSales), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	if len(d.Forecast.Predictions) > 0 {
		section(pdf, "Sales forecast for "+d.Forecast.TargetPeriod)
		header(pdf, []string{"Shop", "Predicted sales"}, []float64{70, 50})
		pdf.SetFont("Helvetica", "", 10)
		shops := make([]string, 0, len(d.Forecast.Predictions))
		for shop := range d.Forecast.Predictions {
			shops = append(shops, shop)
		}
		sort.Strings(shops)
		for _, shop := range shops {
			pdf.CellFormat(70, 7, shop, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 7, money(d.Forecast.Predictions[shop]), "1", 1, "R", false, 0, "")
		}
		pdf.SetFont("Helvetica", "I", 8)
		pdf.Ln(2)
		pdf.MultiCell(0, 5, "Moving average of the last three months; seasonality and trend are not modelled.", "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render dashboard pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func header(pdf *gofpdf.Fpdf, titles []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	for i, t := range titles {
		ln := 0
		if i == len(titles)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 8, t, "1", ln, "C", true, 0, "")
	}
}

func money(d decimal.Decimal) string {
	return currencyPrefix + d.StringFixed(2)
}
