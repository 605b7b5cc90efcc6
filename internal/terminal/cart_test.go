package terminal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCatalog(parts ...PartMirror) *Catalog {
	catalog := NewCatalog()
	catalog.Replace(parts)
	return catalog
}

func TestCartStockConservation(t *testing.T) {
	partID := uuid.New()
	catalog := testCatalog(PartMirror{
		ID:          partID,
		Name:        "Brake Pad Set",
		UnitPrice:   decimal.NewFromFloat(12.50),
		ServerStock: 3,
	})
	cart := NewCart(catalog)

	// reserved + available always equals server stock
	assert.Equal(t, 3, cart.Available(partID))

	require.NoError(t, cart.Add(partID))
	assert.Equal(t, 2, cart.Available(partID))
	assert.Equal(t, 1, cart.Quantity(partID))

	require.NoError(t, cart.Add(partID))
	require.NoError(t, cart.Add(partID))
	assert.Equal(t, 0, cart.Available(partID))
	assert.Equal(t, 3, cart.Quantity(partID))

	err := cart.Add(partID)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Equal(t, 3, cart.Quantity(partID), "failed add must not change the cart")
	assert.Equal(t, 0, cart.Available(partID))

	require.NoError(t, cart.UpdateQuantity(partID, -1))
	assert.Equal(t, 1, cart.Available(partID))

	require.NoError(t, cart.Remove(partID))
	assert.Equal(t, 3, cart.Available(partID))
	assert.True(t, cart.IsEmpty())
}

func TestCartQuantityFloor(t *testing.T) {
	partID := uuid.New()
	catalog := testCatalog(PartMirror{
		ID:          partID,
		Name:        "Oil Filter",
		UnitPrice:   decimal.NewFromFloat(8.99),
		ServerStock: 5,
	})
	cart := NewCart(catalog)

	require.NoError(t, cart.Add(partID))

	err := cart.UpdateQuantity(partID, -1)
	assert.ErrorIs(t, err, ErrMinQuantity)
	assert.Equal(t, 1, cart.Quantity(partID))

	require.NoError(t, cart.Remove(partID))
	assert.ErrorIs(t, cart.UpdateQuantity(partID, -1), ErrNotInCart)
}

func TestCartAddUnknownPart(t *testing.T) {
	cart := NewCart(testCatalog())
	assert.Error(t, cart.Add(uuid.New()))
}

func TestCartTotals(t *testing.T) {
	padID, filterID := uuid.New(), uuid.New()
	catalog := testCatalog(
		PartMirror{ID: padID, Name: "Brake Pad Set", UnitPrice: decimal.NewFromFloat(12.50), ServerStock: 10},
		PartMirror{ID: filterID, Name: "Air Filter", UnitPrice: decimal.NewFromFloat(11.50), ServerStock: 10},
	)
	cart := NewCart(catalog)

	require.NoError(t, cart.Add(padID))
	require.NoError(t, cart.Add(padID))
	require.NoError(t, cart.Add(filterID))

	totals := cart.GetTotals(decimal.NewFromFloat(0.08))
	assert.Equal(t, "36.50", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "2.92", totals.Tax.StringFixed(2))
	assert.Equal(t, "39.42", totals.Total.StringFixed(2))
}

func TestCartTotalsEmpty(t *testing.T) {
	cart := NewCart(testCatalog())
	totals := cart.GetTotals(decimal.NewFromFloat(0.08))
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestCatalogReplaceKeepsReservations(t *testing.T) {
	partID := uuid.New()
	catalog := testCatalog(PartMirror{
		ID:          partID,
		Name:        "Spark Plug",
		UnitPrice:   decimal.NewFromFloat(4.25),
		ServerStock: 4,
	})
	cart := NewCart(catalog)

	require.NoError(t, cart.Add(partID))
	require.NoError(t, cart.Add(partID))
	assert.Equal(t, 2, cart.Available(partID))

	// a fresh server reading changes availability but not the cart
	catalog.Replace([]PartMirror{{
		ID:          partID,
		Name:        "Spark Plug",
		UnitPrice:   decimal.NewFromFloat(4.25),
		ServerStock: 2,
	}})
	assert.Equal(t, 2, cart.Quantity(partID))
	assert.Equal(t, 0, cart.Available(partID))
	assert.ErrorIs(t, cart.Add(partID), ErrOutOfStock)
}
