package feedback

import (
	"context"
	"sync"
)

// MemoryRepo implements Repo in memory for dev mode and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryRepo returns an empty in-memory feedback store.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Append stores a record in insertion order.
func (r *MemoryRepo) Append(_ context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

// ReadAll returns a copy of every record in insertion order.
func (r *MemoryRepo) ReadAll(_ context.Context) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Count returns the number of stored records.
func (r *MemoryRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records), nil
}

var _ Repo = (*MemoryRepo)(nil)
