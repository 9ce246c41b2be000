// Package writer exports analyzed statements to CSV.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/AbhishekSharmale/newexpense-sub001/internal/models"
)

// CSVWriter writes categorized transactions in CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes the result to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, result *models.ParseResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, result)
}

// Write writes the result in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, result *models.ParseResult) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader {
		if result.BankName != "" {
			writer.Write([]string{"# Bank", result.BankName})
		}
		writer.Write([]string{"# Transactions", fmt.Sprintf("%d", result.Summary.TotalTransactions)})
		writer.Write([]string{"# Total Spent", result.Summary.TotalSpent.StringFixed(2)})
		writer.Write([]string{"# Total Income", result.Summary.TotalIncome.StringFixed(2)})
		writer.Write([]string{"# Savings", result.Summary.Savings.StringFixed(2)})
	}

	header := []string{"Date", "Description", "Type", "Amount", "Balance", "Category"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range result.Transactions {
		row := []string{
			txn.Date,
			txn.Description,
			txn.Type,
			txn.Amount.StringFixed(2),
			txn.Balance.StringFixed(2),
			txn.Category,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
