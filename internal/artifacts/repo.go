package artifacts

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no artifact matches.
var ErrNotFound = errors.New("artifact not found")

// Repo stores artifact metadata and the active-version pointer.
type Repo interface {
	// Save inserts metadata for a new, inactive version.
	Save(ctx context.Context, meta Meta) error
	// GetActive returns the currently active version's metadata.
	GetActive(ctx context.Context) (Meta, error)
	// Activate flips the active pointer to the given version atomically:
	// after it returns, exactly that version is active.
	Activate(ctx context.Context, version string) error
	// List returns all versions newest-first.
	List(ctx context.Context) ([]Meta, error)
}
