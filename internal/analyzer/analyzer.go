// Package analyzer computes summary statistics over a finalized
// transaction sequence.
package analyzer

import (
	"github.com/shopspring/decimal"

	"github.com/AbhishekSharmale/newexpense-sub001/internal/categorizer"
	"github.com/AbhishekSharmale/newexpense-sub001/internal/models"
)

// Summarize reduces a transaction sequence to totals and a
// per-category spend breakdown. The reduction is order-independent:
// positive amounts accumulate into income, the rest into spend, and
// only debits contribute to the category map. An empty (or nil) input
// yields all-zero totals and an empty map, not an error.
func Summarize(txns []models.Transaction) models.Summary {
	summary := models.Summary{
		TotalTransactions: len(txns),
		TotalSpent:        decimal.Zero,
		TotalIncome:       decimal.Zero,
		Savings:           decimal.Zero,
		Categories:        map[string]decimal.Decimal{},
	}

	for _, txn := range txns {
		if txn.Amount.IsPositive() {
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
			continue
		}

		spent := txn.Amount.Abs()
		summary.TotalSpent = summary.TotalSpent.Add(spent)

		category := txn.Category
		if category == "" {
			category = categorizer.FallbackCategory
		}
		summary.Categories[category] = summary.Categories[category].Add(spent)
	}

	summary.Savings = summary.TotalIncome.Sub(summary.TotalSpent)
	return summary
}
