package knowledge

import "fmt"

// Catalog is the full component set with category and lookup indexes.
type Catalog struct {
	components map[string]Component
	order      []string
	byCategory map[Category][]string
}

// NewCatalog builds a catalog from the given components and validates it.
func NewCatalog(components []Component) (*Catalog, error) {
	c := &Catalog{
		components: make(map[string]Component, len(components)),
		order:      make([]string, 0, len(components)),
		byCategory: make(map[Category][]string),
	}
	for _, comp := range components {
		if comp.ID == "" {
			return nil, fmt.Errorf("component with empty id")
		}
		if _, dup := c.components[comp.ID]; dup {
			return nil, fmt.Errorf("duplicate component %q", comp.ID)
		}
		if comp.Category == "" {
			return nil, fmt.Errorf("component %q has no category", comp.ID)
		}
		c.components[comp.ID] = comp
		c.order = append(c.order, comp.ID)
		c.byCategory[comp.Category] = append(c.byCategory[comp.Category], comp.ID)
	}
	for _, comp := range components {
		for _, rel := range comp.Related {
			if _, ok := c.components[rel]; !ok {
				return nil, fmt.Errorf("component %q references unknown related component %q", comp.ID, rel)
			}
		}
	}
	return c, nil
}

// Default returns the built-in catalog. The component set is static
// configuration; a broken table is a programming error.
func Default() *Catalog {
	c, err := NewCatalog(defaultComponents)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the component with the given id.
func (c *Catalog) Get(id string) (Component, bool) {
	comp, ok := c.components[id]
	return comp, ok
}

// CategoryOf returns the category of the given component id, or CategoryOther
// for unknown labels.
func (c *Catalog) CategoryOf(id string) Category {
	if comp, ok := c.components[id]; ok {
		return comp.Category
	}
	return CategoryOther
}

// Components returns all components in declaration order.
func (c *Catalog) Components() []Component {
	out := make([]Component, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.components[id])
	}
	return out
}

// Labels returns all component ids in declaration order.
func (c *Catalog) Labels() []string {
	return append([]string(nil), c.order...)
}

// Categories returns all categories that have at least one component,
// in first-seen order.
func (c *Catalog) Categories() []Category {
	seen := make(map[Category]bool, len(c.byCategory))
	out := make([]Category, 0, len(c.byCategory))
	for _, id := range c.order {
		cat := c.components[id].Category
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}

// InCategory returns the component ids belonging to the given category.
func (c *Catalog) InCategory(cat Category) []string {
	return append([]string(nil), c.byCategory[cat]...)
}

// ComponentCategoryMap returns a component-id to category-name mapping,
// suitable for freezing into a model artifact.
func (c *Catalog) ComponentCategoryMap() map[string]string {
	out := make(map[string]string, len(c.components))
	for id, comp := range c.components {
		out[id] = string(comp.Category)
	}
	return out
}
