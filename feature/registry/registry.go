package registry

import (
	"fmt"
	"sort"

	"itemgen/feature/normalize"
)

// Registry holds the normalized catalog and its dense id-indexed lookup table.
type Registry struct {
	// Items are in dataset order.
	Items []normalize.Item
	// Table has length max(id)+1; Table[i] is nil when no item has id i.
	Table []*normalize.Item

	byIdent map[string]int
}

// Reserved names a generated symbol that items must not shadow.
type Reserved struct {
	Identifier string
	// What describes the symbol in error messages, e.g. "item type".
	What string
}

// Build assembles items into a Registry.
// It fails with *CollisionError or *DuplicateIDError; it never drops or renames items.
func Build(items []normalize.Item, reserved ...Reserved) (*Registry, error) {
	reservedBy := make(map[string]string, len(reserved))
	for _, r := range reserved {
		reservedBy[r.Identifier] = r.What
	}

	byIdent := make(map[string]int, len(items))
	for i, item := range items {
		if what, ok := reservedBy[item.Identifier]; ok {
			return nil, &CollisionError{Identifier: item.Identifier, First: item, Reserved: what}
		}
		if j, ok := byIdent[item.Identifier]; ok {
			return nil, &CollisionError{Identifier: item.Identifier, First: items[j], Second: item}
		}
		byIdent[item.Identifier] = i
	}

	// The table is filled from id order rather than dataset order.
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return items[order[a]].ID < items[order[b]].ID
	})

	owned := make([]normalize.Item, len(items))
	copy(owned, items)

	var table []*normalize.Item
	if len(owned) > 0 {
		maxID := owned[order[len(order)-1]].ID
		table = make([]*normalize.Item, maxID+1)
	}

	for k, idx := range order {
		if k > 0 && owned[order[k-1]].ID == owned[idx].ID {
			first, second := owned[order[k-1]], owned[idx]
			return nil, &DuplicateIDError{ID: first.ID, First: first, Second: second}
		}
		table[owned[idx].ID] = &owned[idx]
	}

	reg := &Registry{Items: owned, Table: table, byIdent: byIdent}
	if err := reg.Verify(); err != nil {
		return nil, err
	}
	return reg, nil
}

// Verify checks the table invariants: every populated slot holds the item with
// that id, every item is reachable through its slot, and the table is exactly
// max(id)+1 long.
func (r *Registry) Verify() error {
	maxID := -1
	for _, item := range r.Items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	if len(r.Table) != maxID+1 {
		return fmt.Errorf("lookup table has %d slots, want %d", len(r.Table), maxID+1)
	}

	populated := 0
	for i, slot := range r.Table {
		if slot == nil {
			continue
		}
		if slot.ID != i {
			return fmt.Errorf("lookup slot %d holds item %q with id %d", i, slot.Name, slot.ID)
		}
		populated++
	}
	if populated != len(r.Items) {
		return fmt.Errorf("lookup table has %d populated slots for %d items", populated, len(r.Items))
	}
	return nil
}

// Len returns the number of items.
func (r *Registry) Len() int { return len(r.Items) }

// Size returns the length of the lookup table.
func (r *Registry) Size() int { return len(r.Table) }

// Lookup returns the item with the given id.
func (r *Registry) Lookup(id int) (normalize.Item, bool) {
	if id < 0 || id >= len(r.Table) || r.Table[id] == nil {
		return normalize.Item{}, false
	}
	return *r.Table[id], true
}

// ByIdentifier returns the item whose generated identifier is ident.
func (r *Registry) ByIdentifier(ident string) (normalize.Item, bool) {
	i, ok := r.byIdent[ident]
	if !ok {
		return normalize.Item{}, false
	}
	return r.Items[i], true
}

// ByName returns the item with the given catalog name.
func (r *Registry) ByName(name string) (normalize.Item, bool) {
	for _, item := range r.Items {
		if item.Name == name {
			return item, true
		}
	}
	return normalize.Item{}, false
}

// Gaps returns the absent slot indices in ascending order.
func (r *Registry) Gaps() []int {
	var gaps []int
	for i, slot := range r.Table {
		if slot == nil {
			gaps = append(gaps, i)
		}
	}
	return gaps
}
