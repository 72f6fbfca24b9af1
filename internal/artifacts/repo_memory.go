package artifacts

import (
	"context"
	"sync"
)

// MemoryRepo implements Repo in memory for dev mode and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	metas  []Meta
	active string
}

// NewMemoryRepo returns an empty in-memory artifact metadata store.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Save inserts metadata for a new version.
func (r *MemoryRepo) Save(_ context.Context, meta Meta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	meta.Active = false
	r.metas = append(r.metas, meta)
	return nil
}

// GetActive returns the active version's metadata.
func (r *MemoryRepo) GetActive(_ context.Context) (Meta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, meta := range r.metas {
		if meta.Version == r.active {
			meta.Active = true
			return meta, nil
		}
	}
	return Meta{}, ErrNotFound
}

// Activate flips the active pointer to the given version.
func (r *MemoryRepo) Activate(_ context.Context, version string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, meta := range r.metas {
		if meta.Version == version {
			r.active = version
			return nil
		}
	}
	return ErrNotFound
}

// List returns all versions newest-first.
func (r *MemoryRepo) List(_ context.Context) ([]Meta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Meta, 0, len(r.metas))
	for i := len(r.metas) - 1; i >= 0; i-- {
		meta := r.metas[i]
		meta.Active = meta.Version == r.active
		out = append(out, meta)
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
