package inventory

import (
	"errors"
	"fmt"
)

// ErrDuplicateItem is returned when an item name is added twice.
var ErrDuplicateItem = errors.New("duplicate inventory item")

// Table is an ordered mapping from item name to Item. Iteration order is
// insertion order, which matches the row order of the persisted file, so a
// load/save round-trip never reshuffles rows.
type Table struct {
	items map[string]*Item
	order []string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{items: make(map[string]*Item)}
}

// Add inserts an item under its normalized name. Adding a name that is
// already present returns ErrDuplicateItem and leaves the table unchanged.
func (t *Table) Add(it *Item) error {
	key := NormalizeName(it.Name)
	if key == "" {
		return errors.New("empty item name")
	}
	if _, exists := t.items[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateItem, key)
	}
	it.Name = key
	t.items[key] = it
	t.order = append(t.order, key)
	return nil
}

// Get returns the item stored under the normalized form of name.
func (t *Table) Get(name string) (*Item, bool) {
	it, ok := t.items[NormalizeName(name)]
	return it, ok
}

// At returns the item at the given zero-based position in table order.
func (t *Table) At(i int) (*Item, bool) {
	if i < 0 || i >= len(t.order) {
		return nil, false
	}
	return t.items[t.order[i]], true
}

// Len returns the number of items in the table.
func (t *Table) Len() int {
	return len(t.order)
}

// Items returns all items in table order. The returned slice is freshly
// allocated but the pointers alias the table's items, so callers may mutate
// Quantity through them.
func (t *Table) Items() []*Item {
	out := make([]*Item, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.items[name])
	}
	return out
}

// LowStock returns, in table order, every item whose quantity has dropped
// below its critical level. An empty result means the shop is sufficiently
// stocked.
func (t *Table) LowStock() []*Item {
	var low []*Item
	for _, name := range t.order {
		if it := t.items[name]; it.LowStock() {
			low = append(low, it)
		}
	}
	return low
}
