// Package report rolls already-parsed transactions into spending and income
// buckets for insight views. It runs over persisted records, never raw
// statement lines, and is read-only: aggregating the same list twice gives
// identical output.
package report

import (
	"math"
	"sort"

	"github.com/finlens/statement-insights/internal/models"
)

// CategoryBreakdown is one bucket's share of a direction's total.
type CategoryBreakdown struct {
	Name    string  `json:"name"`
	Total   float64 `json:"total"`
	Percent float64 `json:"percent"`
}

// Report is the nested structure the insights view consumes: expenses and
// income broken down separately, each sorted by descending total.
type Report struct {
	ExpenseCategories []CategoryBreakdown `json:"expenseCategories"`
	IncomeCategories  []CategoryBreakdown `json:"incomeCategories"`
}

// Aggregate groups transactions by category within each direction, sums the
// groups and computes each group's share of the direction-specific total.
// batchID narrows the input to one upload when non-empty. A direction with
// zero total reports 0.0 percentages rather than dividing by zero.
func Aggregate(txns []models.Transaction, batchID string) Report {
	debitTotals := map[string]float64{}
	creditTotals := map[string]float64{}

	for _, txn := range txns {
		if batchID != "" && txn.BatchID != batchID {
			continue
		}
		switch txn.Direction {
		case models.Debit:
			debitTotals[Categorize(txn)] += txn.Amount
		case models.Credit:
			creditTotals[Categorize(txn)] += txn.Amount
		}
	}

	return Report{
		ExpenseCategories: breakdown(debitTotals),
		IncomeCategories:  breakdown(creditTotals),
	}
}

func breakdown(totals map[string]float64) []CategoryBreakdown {
	var grand float64
	for _, v := range totals {
		grand += v
	}

	out := make([]CategoryBreakdown, 0, len(totals))
	for name, total := range totals {
		pct := 0.0
		if grand > 0 {
			pct = roundPercent(total / grand * 100)
		}
		out = append(out, CategoryBreakdown{Name: name, Total: total, Percent: pct})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// roundPercent keeps one decimal place, enough for a dashboard figure.
func roundPercent(p float64) float64 {
	return math.Round(p*10) / 10
}
