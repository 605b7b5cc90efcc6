package terminal

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartMirror is the terminal's local copy of a catalog part. ServerStock is
// the last value read from the backend and is replaced only by a catalog
// fetch; it is never mutated by cart activity. Reservations live in the cart.
type PartMirror struct {
	ID           uuid.UUID
	Name         string
	Description  string
	ImageURL     string
	UnitPrice    decimal.Decimal
	ServerStock  int
	RackLocation string
}

// Catalog holds the mirrored parts list shared between browsing and the cart
type Catalog struct {
	parts map[uuid.UUID]*PartMirror
	order []uuid.UUID
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{parts: make(map[uuid.UUID]*PartMirror)}
}

// Replace swaps the entire mirrored catalog for fresh authoritative values.
// Existing cart reservations are unaffected; availability is always derived
// as server stock minus reserved at read time.
func (c *Catalog) Replace(parts []PartMirror) {
	c.parts = make(map[uuid.UUID]*PartMirror, len(parts))
	c.order = make([]uuid.UUID, 0, len(parts))
	for i := range parts {
		p := parts[i]
		c.parts[p.ID] = &p
		c.order = append(c.order, p.ID)
	}
}

// Get returns the mirrored part for an ID, or nil when unknown
func (c *Catalog) Get(id uuid.UUID) *PartMirror {
	return c.parts[id]
}

// Parts returns the mirrored parts in catalog order
func (c *Catalog) Parts() []*PartMirror {
	out := make([]*PartMirror, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.parts[id])
	}
	return out
}

// Len returns the number of mirrored parts
func (c *Catalog) Len() int {
	return len(c.parts)
}
