package models

import "time"

// Direction tells which way money moved on a statement line.
type Direction string

const (
	Credit Direction = "credit" // money into the account
	Debit  Direction = "debit"  // money out of the account
)

// Transaction is one normalized statement movement. Amount is always a
// positive magnitude; Direction carries the sign. Balance is the running
// balance after the movement when the source supplied one, nil otherwise.
type Transaction struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Direction   Direction `json:"direction"`
	Balance     *float64  `json:"balance,omitempty"`
	BatchID     string    `json:"batchId"`
	OwnerID     string    `json:"ownerId"`
	Category    string    `json:"category,omitempty"`
}

// StatementResult is what one parsed upload produces. Transactions may be
// empty for a document where nothing matched; that is a valid outcome, not
// an error — the caller decides whether to warn the user.
type StatementResult struct {
	BatchID      string        `json:"batchId"`
	OwnerID      string        `json:"ownerId"`
	Transactions []Transaction `json:"transactions"`
	LinesScanned int           `json:"linesScanned"`
	RowsSkipped  int           `json:"rowsSkipped"`
}
