package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/annie29007/ds-cart/internal/catalog/app"
)

type fakeCatalog struct {
	products map[int]Product
}

func (f fakeCatalog) GetProduct(id int) (Product, error) {
	p, ok := f.products[id]
	if !ok {
		return Product{}, catalogapp.ErrNotFound
	}
	return p, nil
}

func newCatalog() fakeCatalog {
	return fakeCatalog{products: map[int]Product{
		101: {ID: 101, Name: "Pen", Currency: "INR", Amount: 1000, Stock: 100},
		102: {ID: 102, Name: "Notebook", Currency: "INR", Amount: 5000, Stock: 80},
	}}
}

func TestAddValidatesAtPushTime(t *testing.T) {
	t.Run("within stock", func(t *testing.T) {
		svc := NewService(newCatalog())
		p, err := svc.Add(101, 5)
		require.NoError(t, err)
		assert.Equal(t, "Pen", p.Name)
		assert.Equal(t, 1, svc.Len())
	})

	t.Run("over stock rejected, cart unchanged", func(t *testing.T) {
		svc := NewService(newCatalog())
		_, err := svc.Add(101, 200)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 0, svc.Len())
	})

	t.Run("unknown product", func(t *testing.T) {
		svc := NewService(newCatalog())
		_, err := svc.Add(999, 1)
		assert.ErrorIs(t, err, catalogapp.ErrNotFound)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		svc := NewService(newCatalog())
		_, err := svc.Add(101, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestLIFOOrder(t *testing.T) {
	svc := NewService(newCatalog())
	_, err := svc.Add(101, 1) // A
	require.NoError(t, err)
	_, err = svc.Add(102, 2) // B
	require.NoError(t, err)
	_, err = svc.Add(101, 3) // C
	require.NoError(t, err)

	entries := svc.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, 3, entries[0].Quantity, "most recent entry first")

	popped, ok := svc.RemoveLast()
	require.True(t, ok)
	assert.Equal(t, 101, popped.ProductID)
	assert.Equal(t, 3, popped.Quantity)

	entries = svc.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 102, entries[0].ProductID)
	assert.Equal(t, 101, entries[1].ProductID)
}

func TestRemoveLastOnEmptyCart(t *testing.T) {
	svc := NewService(newCatalog())
	_, ok := svc.RemoveLast()
	assert.False(t, ok, "empty cart reports ok=false, not an error")
}

func TestDuplicateProductEntriesStaySeparate(t *testing.T) {
	svc := NewService(newCatalog())
	_, err := svc.Add(101, 2)
	require.NoError(t, err)
	_, err = svc.Add(101, 4)
	require.NoError(t, err)

	entries := svc.Entries()
	require.Len(t, entries, 2, "same product pushed twice keeps two entries")
	assert.Equal(t, 4, entries[0].Quantity)
	assert.Equal(t, 2, entries[1].Quantity)
}

func TestClear(t *testing.T) {
	svc := NewService(newCatalog())
	_, _ = svc.Add(101, 1)
	_, _ = svc.Add(102, 1)
	svc.Clear()
	assert.Equal(t, 0, svc.Len())
	assert.Empty(t, svc.Entries())
}

func TestItemsTolerateVanishedProduct(t *testing.T) {
	catalog := newCatalog()
	svc := NewService(catalog)
	_, err := svc.Add(101, 2)
	require.NoError(t, err)
	_, err = svc.Add(102, 1)
	require.NoError(t, err)

	delete(catalog.products, 101)

	items := svc.Items()
	require.Len(t, items, 2)
	assert.False(t, items[0].Unavailable)
	assert.Equal(t, "Notebook", items[0].Name)
	assert.True(t, items[1].Unavailable)
	assert.Equal(t, 101, items[1].ProductID)

	// Listing is read-only.
	assert.Equal(t, 2, svc.Len())
}
