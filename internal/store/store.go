// Package store defines the persistence boundary the pipeline hands its
// output to. The real document store lives outside this repo; this package
// carries only the interface, plus an in-memory implementation for the CLI,
// the API server and tests.
package store

import (
	"context"

	"github.com/finlens/statement-insights/internal/models"
)

// TransactionStore is the insert/query surface the pipeline needs. Bulk
// insert atomicity is the implementation's concern; the pipeline buffers a
// whole batch and calls BulkInsert exactly once per upload.
type TransactionStore interface {
	// BulkInsert stores all transactions of one parsed batch.
	BulkInsert(ctx context.Context, txns []models.Transaction) error
	// ListByOwner returns an owner's transactions, narrowed to one upload
	// when batchID is non-empty.
	ListByOwner(ctx context.Context, ownerID, batchID string) ([]models.Transaction, error)
	// DeleteBatch removes every transaction of one upload, for owner-requested
	// bulk deletion and idempotent re-processing.
	DeleteBatch(ctx context.Context, ownerID, batchID string) error
}
