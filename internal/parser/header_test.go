package parser

import "testing"

func TestLocateHeader(t *testing.T) {
	lines := []string{
		"Account Holder: Varun Joshi",
		"Statement Period: 01-07-2025 to 31-07-2025",
		"Date Narration Withdrawal Deposit Balance",
		"01-07-2025 ATM Withdrawal 2546.00 47454.00",
	}

	cols, idx, found := locateHeader(lines)
	if !found {
		t.Fatal("expected to find a header")
	}
	if idx != 2 {
		t.Errorf("header index: got %d, want 2", idx)
	}

	want := map[string]int{
		"Date":       0,
		"Narration":  1,
		"Withdrawal": 2,
		"Deposit":    3,
		"Balance":    4,
	}
	for label, pos := range want {
		if cols[label] != pos {
			t.Errorf("column %q: got %d, want %d", label, cols[label], pos)
		}
	}
}

func TestLocateHeaderPartialColumns(t *testing.T) {
	// Single-amount layouts have no Withdrawal/Deposit columns.
	lines := []string{"Date Narration Amount Balance"}

	cols, _, found := locateHeader(lines)
	if !found {
		t.Fatal("expected to find a header")
	}
	if _, ok := cols["Withdrawal"]; ok {
		t.Error("Withdrawal should not be recorded for this layout")
	}
	if cols["Balance"] != 3 {
		t.Errorf("Balance position: got %d, want 3", cols["Balance"])
	}
}

func TestLocateHeaderNotFound(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"no header at all", []string{"Account Holder: X", "some metadata"}},
		{"case matters", []string{"date narration balance"}},
		{"missing narration", []string{"Date Withdrawal Deposit Balance"}},
		{"empty input", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, found := locateHeader(tt.lines); found {
				t.Error("expected no header")
			}
		})
	}
}
