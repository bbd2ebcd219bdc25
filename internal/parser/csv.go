package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/finlens/statement-insights/internal/models"
)

// CSV statements carry named fields instead of a positional table, so the
// header locator and keyword direction classifier are bypassed: the type
// column already says credit or debit.
var csvRequiredFields = []string{"date", "description", "amount", "type"}

// csvDateLayouts accepted for the date field: statement-native DD-MM-YYYY
// and export-native YYYY-MM-DD.
var csvDateLayouts = []string{"02-01-2006", "2006-01-02"}

// ParseCSV reads a CSV statement from r and returns the transactions its
// valid rows produce. The first record must be a header row naming at least
// date, description, amount and type; a category column is honored when
// present. Malformed rows are dropped individually — a file is never
// rejected wholesale because some rows are bad. Only an unreadable stream
// or a missing/incomplete header is a hard error.
func ParseCSV(r io.Reader, batchID, ownerID string) (models.StatementResult, error) {
	result := models.StatementResult{
		BatchID:      batchID,
		OwnerID:      ownerID,
		Transactions: []models.Transaction{},
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("read csv header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, f := range csvRequiredFields {
		if _, ok := cols[f]; !ok {
			return result, fmt.Errorf("csv header missing required column %q", f)
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A single unparseable record is a bad row, not a bad file.
			result.RowsSkipped++
			continue
		}
		result.LinesScanned++

		txn, ok := rowToTransaction(record, cols, batchID, ownerID)
		if !ok {
			result.RowsSkipped++
			continue
		}
		result.Transactions = append(result.Transactions, txn)
	}

	return result, nil
}

func rowToTransaction(record []string, cols map[string]int, batchID, ownerID string) (models.Transaction, bool) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	for _, f := range csvRequiredFields {
		if field(f) == "" {
			return models.Transaction{}, false
		}
	}

	date, ok := parseCSVDate(field("date"))
	if !ok {
		return models.Transaction{}, false
	}

	amount, err := strconv.ParseFloat(field("amount"), 64)
	if err != nil || amount <= 0 {
		return models.Transaction{}, false
	}

	var direction models.Direction
	switch strings.ToLower(field("type")) {
	case "credit":
		direction = models.Credit
	case "debit":
		direction = models.Debit
	default:
		return models.Transaction{}, false
	}

	return models.Transaction{
		Date:        date,
		Description: field("description"),
		Amount:      amount,
		Direction:   direction,
		BatchID:     batchID,
		OwnerID:     ownerID,
		Category:    field("category"),
	}, true
}

func parseCSVDate(s string) (time.Time, bool) {
	for _, layout := range csvDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
