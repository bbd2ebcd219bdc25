package writer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/finlens/statement-insights/internal/models"
)

func sampleResult() models.StatementResult {
	balance := 59047.00
	return models.StatementResult{
		BatchID: "batch-1",
		OwnerID: "owner-1",
		Transactions: []models.Transaction{
			{
				Date:        time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC),
				Description: "Salary - XYZ Pvt Ltd",
				Amount:      13367.00,
				Direction:   models.Credit,
				Balance:     &balance,
				BatchID:     "batch-1",
				OwnerID:     "owner-1",
			},
			{
				Date:        time.Date(2025, time.July, 6, 0, 0, 0, 0, time.UTC),
				Description: "UPI - ZOMATO",
				Amount:      6833.00,
				Direction:   models.Debit,
				BatchID:     "batch-1",
				OwnerID:     "owner-1",
				Category:    "Food & Dining",
			},
		},
	}
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	if err := w.Write(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}

	if lines[0] != "Date,Description,Type,Amount,Balance,Category" {
		t.Errorf("header: got %q", lines[0])
	}
	if lines[1] != "03-07-2025,Salary - XYZ Pvt Ltd,credit,13367.00,59047.00," {
		t.Errorf("row 1: got %q", lines[1])
	}
	if lines[2] != "06-07-2025,UPI - ZOMATO,debit,6833.00,,Food & Dining" {
		t.Errorf("row 2: got %q", lines[2])
	}
}

func TestCSVWriterBatchMeta(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeBatchMeta: true}
	if err := w.Write(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "# Batch,batch-1") {
		t.Errorf("missing batch meta row:\n%s", out)
	}
	if !strings.Contains(out, "# Owner,owner-1") {
		t.Errorf("missing owner meta row:\n%s", out)
	}
}
