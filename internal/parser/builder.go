package parser

import (
	"time"

	"github.com/finlens/statement-insights/internal/models"
)

// buildTransaction assembles the final record from a resolved line. It
// returns false — and the line is silently dropped — unless a direction and
// a strictly positive amount were both determined and the narration is
// non-empty. Batch and owner ids come from the caller; a transaction is
// never created without them.
func buildTransaction(date time.Time, description string, mv movement, batchID, ownerID string) (models.Transaction, bool) {
	if mv.direction == "" || mv.amount <= 0 || description == "" {
		return models.Transaction{}, false
	}

	balance := mv.balance
	return models.Transaction{
		Date:        date,
		Description: description,
		Amount:      mv.amount,
		Direction:   mv.direction,
		Balance:     &balance,
		BatchID:     batchID,
		OwnerID:     ownerID,
	}, true
}
