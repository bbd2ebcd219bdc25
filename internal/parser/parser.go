// Package parser turns loosely formatted bank statement text and CSV rows
// into normalized transactions. Parsing is best-effort throughout: lines
// that do not look like transaction rows are skipped, never errored on, and
// a document where nothing matches yields an empty result.
package parser

import "github.com/finlens/statement-insights/internal/models"

// ParseStatement runs the whole pipeline over one statement's extracted
// text: split into lines, find the table header, then parse, resolve and
// classify every body line. batchID and ownerID are stamped onto every
// transaction produced.
//
// The pipeline is a pure function of its inputs. Persistence belongs to the
// caller.
func ParseStatement(text, batchID, ownerID string) models.StatementResult {
	result := models.StatementResult{
		BatchID:      batchID,
		OwnerID:      ownerID,
		Transactions: []models.Transaction{},
	}

	lines := normalizeLines(text)
	result.LinesScanned = len(lines)

	// No recognizable header means no table; the document produces zero
	// transactions rather than an error.
	_, headerIdx, found := locateHeader(lines)
	if !found {
		return result
	}

	for _, line := range lines[headerIdx+1:] {
		pl, ok := parseLine(line)
		if !ok {
			continue
		}

		mv, ok := resolveAmounts(pl.amounts)
		if !ok {
			continue
		}
		if mv.direction == "" {
			mv.direction = classifyDirection(pl.description)
		}

		txn, ok := buildTransaction(pl.date, pl.description, mv, batchID, ownerID)
		if !ok {
			continue
		}
		result.Transactions = append(result.Transactions, txn)
	}

	return result
}
