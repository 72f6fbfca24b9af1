package artifacts

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryRepoConcurrentActivate(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	const versions = 20
	for i := 0; i < versions; i++ {
		if err := repo.Save(ctx, Meta{Version: fmt.Sprintf("v%d", i)}); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < versions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := repo.Activate(ctx, fmt.Sprintf("v%d", i)); err != nil {
				t.Errorf("Activate: %v", err)
			}
		}(i)
	}
	for i := 0; i < versions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			meta, err := repo.GetActive(ctx)
			if err == nil && !meta.Active {
				t.Errorf("GetActive returned inactive meta %q", meta.Version)
			}
		}()
	}
	wg.Wait()

	// Exactly one version ends up active regardless of interleaving.
	metas, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	active := 0
	for _, m := range metas {
		if m.Active {
			active++
		}
	}
	if active != 1 {
		t.Fatalf("active versions = %d, want 1", active)
	}
}
