package feedback

import "context"

// Repo is the append-only feedback store.
type Repo interface {
	// Append persists a new record. Existing records are never modified.
	Append(ctx context.Context, rec Record) error
	// ReadAll returns every record in insertion order.
	ReadAll(ctx context.Context) ([]Record, error)
	// Count returns the total number of records.
	Count(ctx context.Context) (int, error)
}
