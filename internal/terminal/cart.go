package terminal

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrOutOfStock is returned when no sellable units remain for a part
	ErrOutOfStock = errors.New("no stock available for this part")
	// ErrNotInCart is returned when an operation targets a part with no cart line
	ErrNotInCart = errors.New("part is not in the cart")
	// ErrMinQuantity is returned when a decrement would take a line below one unit
	ErrMinQuantity = errors.New("quantity cannot go below 1; remove the line instead")
)

// CartLine is one part and its reserved quantity
type CartLine struct {
	Part     *PartMirror
	Quantity int
}

// LineTotal returns unit price times quantity
func (l *CartLine) LineTotal() decimal.Decimal {
	return l.Part.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the in-progress basket for one sale. Every unit in the cart is a
// reservation against the mirrored catalog: for any part,
// available = server stock - reserved, and reserved returns to the pool when
// lines shrink or the cart is cleared.
type Cart struct {
	catalog  *Catalog
	lines    map[uuid.UUID]*CartLine
	order    []uuid.UUID
	reserved map[uuid.UUID]int
}

// NewCart creates an empty cart over the given catalog
func NewCart(catalog *Catalog) *Cart {
	return &Cart{
		catalog:  catalog,
		lines:    make(map[uuid.UUID]*CartLine),
		reserved: make(map[uuid.UUID]int),
	}
}

// Available returns the sellable units for a part: the last server stock
// reading minus what this cart has reserved.
func (c *Cart) Available(partID uuid.UUID) int {
	part := c.catalog.Get(partID)
	if part == nil {
		return 0
	}
	return part.ServerStock - c.reserved[partID]
}

// Add puts one unit of the part in the cart, growing the existing line if
// there is one. Fails without state change when no sellable units remain.
func (c *Cart) Add(partID uuid.UUID) error {
	part := c.catalog.Get(partID)
	if part == nil {
		return fmt.Errorf("unknown part %s", partID)
	}
	if c.Available(partID) <= 0 {
		return ErrOutOfStock
	}

	if line, ok := c.lines[partID]; ok {
		line.Quantity++
	} else {
		c.lines[partID] = &CartLine{Part: part, Quantity: 1}
		c.order = append(c.order, partID)
	}
	c.reserved[partID]++
	return nil
}

// UpdateQuantity changes a line's quantity by +1 or -1. Increments follow the
// same availability rule as Add; a decrement below one unit is rejected.
func (c *Cart) UpdateQuantity(partID uuid.UUID, delta int) error {
	line, ok := c.lines[partID]
	if !ok {
		return ErrNotInCart
	}

	switch {
	case delta > 0:
		return c.Add(partID)
	case delta < 0:
		if line.Quantity <= 1 {
			return ErrMinQuantity
		}
		line.Quantity--
		c.reserved[partID]--
		return nil
	}
	return nil
}

// Remove deletes a line entirely and releases its full reservation
func (c *Cart) Remove(partID uuid.UUID) error {
	if _, ok := c.lines[partID]; !ok {
		return ErrNotInCart
	}

	delete(c.lines, partID)
	delete(c.reserved, partID)
	for i, id := range c.order {
		if id == partID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear empties the cart and releases every reservation
func (c *Cart) Clear() {
	c.lines = make(map[uuid.UUID]*CartLine)
	c.reserved = make(map[uuid.UUID]int)
	c.order = nil
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns the cart lines in insertion order
func (c *Cart) Lines() []*CartLine {
	out := make([]*CartLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.lines[id])
	}
	return out
}

// Quantity returns the cart quantity for a part, zero when absent
func (c *Cart) Quantity(partID uuid.UUID) int {
	if line, ok := c.lines[partID]; ok {
		return line.Quantity
	}
	return 0
}

// Totals holds the cart's derived monetary figures
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// GetTotals computes subtotal, tax and total for the cart at the given tax
// rate. Pure computation; tax is rounded to cents.
func (c *Cart) GetTotals(taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, id := range c.order {
		subtotal = subtotal.Add(c.lines[id].LineTotal())
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
