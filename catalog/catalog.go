package catalog

import "fmt"

// Catalog is an ordered, id-indexed item list
type Catalog struct {
	items []Item
	index map[string]int
}

// New validates items and builds a catalog
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	starters := map[Kind]string{}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := c.index[it.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate item %q", it.ID)
		}
		if it.Starter {
			if prev, ok := starters[it.Kind]; ok {
				return nil, fmt.Errorf("catalog: %s and %s are both starter %s", prev, it.ID, it.Kind)
			}
			starters[it.Kind] = it.ID
		}
		c.index[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

// Lookup returns the item with id
func (c *Catalog) Lookup(id string) (Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// ByKind returns items of kind in catalog order
func (c *Catalog) ByKind(k Kind) []Item {
	var out []Item
	for _, it := range c.items {
		if it.Kind == k {
			out = append(out, it)
		}
	}
	return out
}

// Starter returns the starter item for an equipment kind
func (c *Catalog) Starter(k Kind) (Item, bool) {
	for _, it := range c.items {
		if it.Kind == k && it.Starter {
			return it, true
		}
	}
	return Item{}, false
}

// Items returns all items in catalog order
func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}
