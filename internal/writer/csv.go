// Package writer renders parsed transactions as CSV for download/export.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/finlens/statement-insights/internal/models"
)

// CSVWriter writes a batch of transactions in CSV form.
type CSVWriter struct {
	// IncludeBatchMeta adds comment rows with batch and owner ids before the
	// column header.
	IncludeBatchMeta bool
}

// WriteToFile writes the result to a CSV file at path.
func (w *CSVWriter) WriteToFile(path string, result models.StatementResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, result)
}

// Write emits the CSV to out: optional metadata rows, a column header, one
// row per transaction.
func (w *CSVWriter) Write(out io.Writer, result models.StatementResult) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	if w.IncludeBatchMeta {
		cw.Write([]string{"# Batch", result.BatchID})
		cw.Write([]string{"# Owner", result.OwnerID})
	}

	header := []string{"Date", "Description", "Type", "Amount", "Balance", "Category"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, txn := range result.Transactions {
		balance := ""
		if txn.Balance != nil {
			balance = formatAmount(*txn.Balance)
		}
		row := []string{
			txn.Date.Format("02-01-2006"),
			txn.Description,
			string(txn.Direction),
			formatAmount(txn.Amount),
			balance,
			txn.Category,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
