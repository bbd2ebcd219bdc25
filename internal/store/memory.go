package store

import (
	"context"
	"sync"

	"github.com/finlens/statement-insights/internal/models"
)

// MemoryStore is a TransactionStore backed by a slice. It exists so the CLI
// and server work without the external document store and so tests have a
// real boundary to exercise.
type MemoryStore struct {
	mu   sync.RWMutex
	txns []models.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) BulkInsert(ctx context.Context, txns []models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txns = append(s.txns, txns...)
	return nil
}

func (s *MemoryStore) ListByOwner(ctx context.Context, ownerID, batchID string) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Transaction{}
	for _, t := range s.txns {
		if t.OwnerID != ownerID {
			continue
		}
		if batchID != "" && t.BatchID != batchID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *MemoryStore) DeleteBatch(ctx context.Context, ownerID, batchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.txns[:0]
	for _, t := range s.txns {
		if t.OwnerID == ownerID && t.BatchID == batchID {
			continue
		}
		kept = append(kept, t)
	}
	s.txns = kept
	return nil
}
