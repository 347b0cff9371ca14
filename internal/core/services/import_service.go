package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Columns every upload must carry. The expenses may come either as a JSON
// "expenses" column or as one column per category.
var requiredImportColumns = []string{"date", "shop_name", "sales", "cost", "cash_out", "bank_deposit"}

const expensesColumn = "expenses"

// importRow is one data row as read from the file, before conversion.
type importRow struct {
	Date        string `col:"date" validate:"required"`
	ShopName    string `col:"shop_name" validate:"required"`
	Sales       string `col:"sales" validate:"omitempty,numeric"`
	Cost        string `col:"cost" validate:"omitempty,numeric"`
	CashOut     string `col:"cash_out" validate:"omitempty,numeric"`
	BankDeposit string `col:"bank_deposit" validate:"omitempty,numeric"`
}

type importService struct {
	BaseService
	transactions portssvc.TransactionWriterSvc
	validate     *validator.Validate
}

// NewImportService creates an import service that records rows through transactions.
func NewImportService(transactions portssvc.TransactionWriterSvc) portssvc.ImportSvc {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("col")
	})
	return &importService{transactions: transactions, validate: v}
}

var _ portssvc.ImportSvc = (*importService)(nil)

// ImportFile records every valid row and reports the others. A failing row
// does not undo the rows before it. Store and authorization failures stop the
// import and return the error.
func (s *importService) ImportFile(ctx context.Context, filename string, r io.Reader, actor string) (*domain.ImportResult, error) {
	var (
		records [][]string
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		records, err = readCSV(r)
	case ".xlsx", ".xlsm":
		records, err = readXLSX(r)
	default:
		return nil, apperrors.Validationf("unsupported file type %q (use .csv or .xlsx)", ext)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.Validationf("file is empty")
	}

	cols, err := indexColumns(records[0])
	if err != nil {
		return nil, err
	}

	result := &domain.ImportResult{
		Imported: []domain.Transaction{},
		Failed:   []domain.ImportRowError{},
	}
	for i, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		rowNum := i + 1
		result.TotalRows++

		txn, err := s.parseRow(cols, record)
		if err != nil {
			result.Failed = append(result.Failed, domain.ImportRowError{Row: rowNum, Reason: err.Error()})
			continue
		}
		saved, err := s.transactions.AppendValidated(ctx, txn, actor)
		if err != nil {
			if errors.Is(err, apperrors.ErrStoreUnavailable) || errors.Is(err, apperrors.ErrUnauthorized) {
				s.LogError(ctx, err, "Import aborted", slog.Int("row", rowNum), slog.Int("imported", len(result.Imported)))
				return nil, err
			}
			result.Failed = append(result.Failed, domain.ImportRowError{Row: rowNum, Reason: err.Error()})
			continue
		}
		result.Imported = append(result.Imported, *saved)
	}

	s.LogInfo(ctx, "Import finished",
		slog.String("file", filename),
		slog.Int("rows", result.TotalRows),
		slog.Int("imported", len(result.Imported)),
		slog.Int("failed", len(result.Failed)))
	return result, nil
}

// WriteTemplate writes a CSV with the expected header and two example rows.
func (s *importService) WriteTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		{"date", "shop_name", "sales", "cost", "cash_out", "expenses", "bank_deposit"},
		{"2023-01-01", "Gampaha", "10000", "7000", "500", `{"salary": 1000, "rent": 500, "light_bill": 200, "description": "January expenses"}`, "2000"},
		{"2023-01-01", "Nittambuwa", "12000", "8000", "600", `{"salary": 1200, "rent": 500, "light_bill": 220, "description": "January expenses"}`, "2500"},
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}

func (s *importService) parseRow(cols map[string]int, record []string) (domain.Transaction, error) {
	cell := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	raw := importRow{
		Date:        cell("date"),
		ShopName:    cell("shop_name"),
		Sales:       cell("sales"),
		Cost:        cell("cost"),
		CashOut:     cell("cash_out"),
		BankDeposit: cell("bank_deposit"),
	}
	if err := s.validate.Struct(raw); err != nil {
		return domain.Transaction{}, describeValidation(err)
	}

	date, err := parseImportDate(raw.Date)
	if err != nil {
		return domain.Transaction{}, err
	}

	expenses, err := s.parseExpenses(cell)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn := domain.Transaction{ShopName: raw.ShopName, Date: date, Expenses: expenses}
	amounts := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"sales", raw.Sales, &txn.Sales},
		{"cost", raw.Cost, &txn.Cost},
		{"cash_out", raw.CashOut, &txn.CashOut},
		{"bank_deposit", raw.BankDeposit, &txn.BankDeposit},
	}
	for _, a := range amounts {
		v, err := parseAmount(a.name, a.raw)
		if err != nil {
			return domain.Transaction{}, err
		}
		*a.dst = v
	}
	return txn, nil
}

// parseExpenses prefers a non-empty JSON expenses cell and otherwise reads
// the per-category columns; missing categories are zero.
func (s *importService) parseExpenses(cell func(string) string) (domain.Expenses, error) {
	if v := cell(expensesColumn); v != "" {
		return domain.ParseExpensesJSON(v)
	}

	amounts := make(map[domain.ExpenseCategory]decimal.Decimal)
	for _, c := range domain.ExpenseCategories {
		v := cell(string(c))
		if v == "" {
			continue
		}
		if err := s.validate.Var(v, "numeric"); err != nil {
			return domain.Expenses{}, apperrors.Validationf("%s: %q is not a number", c, v)
		}
		amount, err := parseAmount(string(c), v)
		if err != nil {
			return domain.Expenses{}, err
		}
		amounts[c] = amount
	}
	return domain.NewExpenses(amounts, cell(domain.DescriptionKey)), nil
}

func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
		if _, dup := cols[name]; !dup && name != "" {
			cols[name] = i
		}
	}

	var missing []string
	for _, c := range requiredImportColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.Validationf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// parseImportDate accepts YYYY-MM-DD text or a spreadsheet date serial.
func parseImportDate(s string) (time.Time, error) {
	d, err := domain.ParseBusinessDate(s)
	if err == nil {
		return d, nil
	}
	serial, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil {
		return time.Time{}, err
	}
	t, xerr := excelize.ExcelDateToTime(serial, false)
	if xerr != nil {
		return time.Time{}, err
	}
	return domain.BusinessDate(t), nil
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Validationf("%v", err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		case "numeric":
			parts = append(parts, fmt.Sprintf("%s: %q is not a number", fe.Field(), fe.Value()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return apperrors.Validationf("%s", strings.Join(parts, "; "))
}

// parseAmount reads a numeric cell; an empty cell is zero.
func parseAmount(name, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return decimal.Zero, apperrors.Validationf("%s: %q is not a number", name, s)
	}
	return d, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, apperrors.Validationf("cannot read CSV: %v", err)
	}
	return records, nil
}

// readXLSX reads the first sheet with raw cell values, so dates arrive as
// serial numbers rather than in the workbook's display format.
func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.Validationf("cannot read spreadsheet: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.Validationf("cannot read sheet %q: %v", sheets[0], err)
	}
	return rows, nil
}
