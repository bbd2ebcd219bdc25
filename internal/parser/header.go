package parser

import "strings"

// ColumnMap records where each recognized column label sits among the
// whitespace-separated tokens of the header row. Built once per statement,
// read-only afterward. CSV ingestion never builds one — CSV rows carry
// named fields instead.
type ColumnMap map[string]int

// Canonical column labels as they appear in supported statement layouts.
// The match is case-sensitive on purpose: these are printed table headers,
// not free text.
const (
	colDate       = "Date"
	colNarration  = "Narration"
	colWithdrawal = "Withdrawal"
	colDeposit    = "Deposit"
	colBalance    = "Balance"
)

// locateHeader scans lines for the row that declares the transaction table.
// A line qualifies when it contains Date, Narration and Balance as
// substrings. It returns the column map, the index of the header line, and
// whether one was found. Everything before the header is statement metadata
// (account holder, branch, period) and is never parsed for transactions.
func locateHeader(lines []string) (ColumnMap, int, bool) {
	for i, line := range lines {
		if !strings.Contains(line, colDate) ||
			!strings.Contains(line, colNarration) ||
			!strings.Contains(line, colBalance) {
			continue
		}

		cols := ColumnMap{}
		for pos, token := range strings.Fields(line) {
			switch token {
			case colDate, colNarration, colWithdrawal, colDeposit, colBalance:
				cols[token] = pos
			}
		}
		return cols, i, true
	}
	return nil, -1, false
}
