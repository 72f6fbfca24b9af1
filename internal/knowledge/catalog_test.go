package knowledge

import "testing"

func TestDefaultCatalogIsValidPartition(t *testing.T) {
	c := Default()

	// Every component belongs to exactly one category, and the union of all
	// category sets is the full component set with no overlap.
	seen := make(map[string]Category)
	for _, cat := range c.Categories() {
		ids := c.InCategory(cat)
		if len(ids) == 0 {
			t.Errorf("category %q has no components", cat)
		}
		for _, id := range ids {
			if prev, dup := seen[id]; dup {
				t.Errorf("component %q appears in both %q and %q", id, prev, cat)
			}
			seen[id] = cat
		}
	}
	if len(seen) != len(c.Components()) {
		t.Errorf("union of categories has %d components, catalog has %d", len(seen), len(c.Components()))
	}
}

func TestDefaultCatalogLookups(t *testing.T) {
	c := Default()

	comp, ok := c.Get("RAM Upgrade")
	if !ok {
		t.Fatal("RAM Upgrade missing from catalog")
	}
	if comp.Category != CategoryPerformance {
		t.Errorf("RAM Upgrade category = %q, want Performance", comp.Category)
	}
	if comp.Definition == "" || comp.WhyUseful == "" || len(comp.FixingTips) == 0 {
		t.Error("RAM Upgrade is missing enrichment text")
	}

	if got := c.CategoryOf("PSU Upgrade"); got != CategoryPower {
		t.Errorf("CategoryOf(PSU Upgrade) = %q, want Power", got)
	}
	if got := c.CategoryOf("Nonexistent Widget"); got != CategoryOther {
		t.Errorf("CategoryOf(unknown) = %q, want Other", got)
	}
}

func TestDefaultCatalogRelatedResolve(t *testing.T) {
	c := Default()
	for _, comp := range c.Components() {
		for _, rel := range comp.Related {
			if _, ok := c.Get(rel); !ok {
				t.Errorf("component %q has unresolved related component %q", comp.ID, rel)
			}
		}
	}
}

func TestNewCatalogRejectsBadTables(t *testing.T) {
	cases := []struct {
		name       string
		components []Component
	}{
		{"duplicate id", []Component{
			{ID: "A", Category: CategoryOther},
			{ID: "A", Category: CategoryOther},
		}},
		{"empty category", []Component{{ID: "A"}}},
		{"unresolved related", []Component{
			{ID: "A", Category: CategoryOther, Related: []string{"B"}},
		}},
	}
	for _, tc := range cases {
		if _, err := NewCatalog(tc.components); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}
