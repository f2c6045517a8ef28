package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidCatalog is returned when catalog data is malformed.
var ErrInvalidCatalog = errors.New("invalid catalog")

// ErrUnknownGroup is returned by helpers that require a group to exist.
var ErrUnknownGroup = errors.New("unknown group")

// Catalog is the read-only source of word groups.
type Catalog interface {
	// Lookup returns the group with the given id.
	Lookup(id GroupID) (Group, bool)

	// List returns every group in catalog order.
	List() []Group
}

// MemoryCatalog is an immutable in-memory Catalog.
type MemoryCatalog struct {
	groups []Group
	byID   map[GroupID]int
}

var _ Catalog = (*MemoryCatalog)(nil)

// New builds a MemoryCatalog from groups. Group order is preserved.
// Groups and their items are copied.
func New(groups []Group) (*MemoryCatalog, error) {
	c := &MemoryCatalog{
		groups: make([]Group, 0, len(groups)),
		byID:   make(map[GroupID]int, len(groups)),
	}
	for i, g := range groups {
		if g.ID == "" {
			return nil, fmt.Errorf("%w: group %d has empty id", ErrInvalidCatalog, i)
		}
		if _, dup := c.byID[g.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate group id %q", ErrInvalidCatalog, g.ID)
		}
		g.Items = slices.Clone(g.Items)
		c.byID[g.ID] = len(c.groups)
		c.groups = append(c.groups, g)
	}
	return c, nil
}

// Lookup returns the group with the given id.
func (c *MemoryCatalog) Lookup(id GroupID) (Group, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Group{}, false
	}
	g := c.groups[i]
	g.Items = slices.Clone(g.Items)
	return g, true
}

// List returns every group in catalog order.
func (c *MemoryCatalog) List() []Group {
	out := make([]Group, len(c.groups))
	for i, g := range c.groups {
		g.Items = slices.Clone(g.Items)
		out[i] = g
	}
	return out
}

// IDs returns the group ids in catalog order.
func (c *MemoryCatalog) IDs() []GroupID {
	ids := make([]GroupID, len(c.groups))
	for i, g := range c.groups {
		ids[i] = g.ID
	}
	return ids
}

// TotalItems returns the number of items across the given groups.
// Unknown ids count as zero.
func TotalItems(c Catalog, ids []GroupID) int {
	total := 0
	for _, id := range ids {
		if g, ok := c.Lookup(id); ok {
			total += len(g.Items)
		}
	}
	return total
}
