package services_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/shopbooks/internal/apperrors"
	"github.com/SscSPs/shopbooks/internal/core/domain"
	"github.com/SscSPs/shopbooks/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestImportFile_CSVRoundTrip(t *testing.T) {
	repo := &memTransactionRepo{}
	txnSvc := services.NewTransactionService(repo, services.WithShops([]string{"Gampaha", "Nittambuwa"}))
	svc := services.NewImportService(txnSvc)
	ctx := context.Background()

	csv := strings.Join([]string{
		"Date,Shop Name,sales,cost,cash_out,expenses,bank_deposit",
		`2023-01-05,Gampaha,1000,600,50,"{""salary"": 100, ""description"": ""Jan""}",200`,
		`2023-01-20,Gampaha,1500,900,0,,300`,
		`2023-01-21,Nittambuwa,800,500,0,"{}",0`,
		``,
	}, "\n")

	res, err := svc.ImportFile(ctx, "jan.csv", strings.NewReader(csv), "admin")
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalRows)
	assert.Len(t, res.Imported, 3)
	assert.Empty(t, res.Failed)

	stored, err := txnSvc.ListTransactions(ctx, domain.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, "100", stored[0].Expenses.Amount(domain.ExpenseSalary).String())
	assert.Equal(t, "Jan", stored[0].Expenses.Description)
	assert.Equal(t, "admin", stored[0].CreatedBy)
}

func TestImportFile_PerRowFailures(t *testing.T) {
	repo := &memTransactionRepo{}
	svc := services.NewImportService(services.NewTransactionService(repo, services.WithShops([]string{"Gampaha"})))

	csv := strings.Join([]string{
		"date,shop_name,sales,cost,cash_out,bank_deposit,salary,rent",
		"2024-02-01,Gampaha,100,50,0,0,10,5",
		"2024-02-02,Gampaha,-100,50,0,0,,",
		"2024-02-03,Kandy,100,50,0,0,,",
		"not-a-date,Gampaha,100,50,0,0,,",
		"2024-02-05,Gampaha,abc,50,0,0,,",
		"2024-02-06,,100,50,0,0,,",
		"2024-02-07,Gampaha,100,50,0,0,x,",
	}, "\n")

	res, err := svc.ImportFile(context.Background(), "feb.CSV", strings.NewReader(csv), "admin")
	require.NoError(t, err)
	assert.Equal(t, 7, res.TotalRows)
	require.Len(t, res.Imported, 1)
	assert.Equal(t, "15", res.Imported[0].Expenses.Total().String())

	rows := make([]int, 0, len(res.Failed))
	for _, f := range res.Failed {
		rows = append(rows, f.Row)
		assert.NotEmpty(t, f.Reason)
	}
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7}, rows)
	assert.Contains(t, res.Failed[4].Reason, "shop_name is required")
	assert.Len(t, repo.rows, 1)
}

func TestImportFile_MissingColumns(t *testing.T) {
	svc := services.NewImportService(services.NewTransactionService(&memTransactionRepo{}))

	_, err := svc.ImportFile(context.Background(), "x.csv", strings.NewReader("date,shop_name,sales\n2024-01-01,A,1\n"), "admin")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "cost")
}

func TestImportFile_UnsupportedType(t *testing.T) {
	svc := services.NewImportService(services.NewTransactionService(&memTransactionRepo{}))

	_, err := svc.ImportFile(context.Background(), "books.pdf", strings.NewReader(""), "admin")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestImportFile_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"date", "shop_name", "sales", "cost", "cash_out", "expenses", "bank_deposit"},
		{"2024-05-01", "Gampaha", 1200, 800, 0, `{"rent": 300}`, 400},
		{45414, "Gampaha", 900, 400, 0, "", 0}, // 2024-05-02 as a date serial
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	repo := &memTransactionRepo{}
	svc := services.NewImportService(services.NewTransactionService(repo))
	res, err := svc.ImportFile(context.Background(), "may.xlsx", bytes.NewReader(buf.Bytes()), "admin")

	require.NoError(t, err)
	assert.Empty(t, res.Failed)
	require.Len(t, res.Imported, 2)
	assert.Equal(t, "300", res.Imported[0].Expenses.Total().String())
	assert.Equal(t, "2024-05-02", res.Imported[1].Date.Format(domain.DateLayout))
}

func TestWriteTemplate_ImportsCleanly(t *testing.T) {
	repo := &memTransactionRepo{}
	svc := services.NewImportService(services.NewTransactionService(repo, services.WithShops([]string{"Gampaha", "Nittambuwa"})))

	var buf bytes.Buffer
	require.NoError(t, svc.WriteTemplate(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "date,shop_name,sales,cost,cash_out,expenses,bank_deposit\n"))

	res, err := svc.ImportFile(context.Background(), "template.csv", &buf, "admin")
	require.NoError(t, err)
	assert.Len(t, res.Imported, 2)
	assert.Empty(t, res.Failed)
	assert.Equal(t, "1700", res.Imported[0].Expenses.Total().String())
}
