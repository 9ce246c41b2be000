package writer

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbhishekSharmale/newexpense-sub001/internal/models"
)

func sampleResult() *models.ParseResult {
	txns := []models.Transaction{
		{
			Date:        "2024-04-01",
			Description: "UPI/ZOMATO/ref",
			Type:        models.TypeDebit,
			Amount:      decimal.RequireFromString("-1234.00"),
			Balance:     decimal.RequireFromString("5000.00"),
			Category:    "UPI Payment",
		},
		{
			Date:        "2024-04-03",
			Description: "SALARY CREDIT",
			Type:        models.TypeCredit,
			Amount:      decimal.RequireFromString("75000.00"),
			Balance:     decimal.RequireFromString("80000.00"),
			Category:    "Income",
		},
	}
	return &models.ParseResult{
		Transactions: txns,
		Summary: models.Summary{
			TotalTransactions: 2,
			TotalSpent:        decimal.RequireFromString("1234.00"),
			TotalIncome:       decimal.RequireFromString("75000.00"),
			Savings:           decimal.RequireFromString("73766.00"),
		},
		BankName: "HDFC Bank",
	}
}

func TestCSVWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.Write(&buf, sampleResult()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Date", "Description", "Type", "Amount", "Balance", "Category"}, records[0])
	assert.Equal(t, []string{"2024-04-01", "UPI/ZOMATO/ref", "DEBIT", "-1234.00", "5000.00", "UPI Payment"}, records[1])
	assert.Equal(t, []string{"2024-04-03", "SALARY CREDIT", "CREDIT", "75000.00", "80000.00", "Income"}, records[2])
}

func TestCSVWriter_WriteWithHeader(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: true}
	require.NoError(t, w.Write(&buf, sampleResult()))

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8)

	assert.Equal(t, []string{"# Bank", "HDFC Bank"}, records[0])
	assert.Equal(t, []string{"# Transactions", "2"}, records[1])
	assert.Equal(t, []string{"# Total Spent", "1234.00"}, records[2])
	assert.Equal(t, []string{"# Total Income", "75000.00"}, records[3])
	assert.Equal(t, []string{"# Savings", "73766.00"}, records[4])
}

func TestCSVWriter_EmptyTransactions(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.Write(&buf, &models.ParseResult{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header row only
}
