package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductByID(t *testing.T) {
	t.Parallel()
	c := New()

	p, ok := c.ProductByID("1")
	require.True(t, ok, "expected product 1 to exist")
	assert.True(t, p.Price.Equal(decimal.RequireFromString("1499.99")), "unexpected price %s", p.Price)

	_, ok = c.ProductByID("does-not-exist")
	assert.False(t, ok, "expected lookup miss for unknown id")
}

func TestProductsByIDsPreservesInputOrder(t *testing.T) {
	t.Parallel()
	c := New()

	got := c.ProductsByIDs([]string{"4", "unknown", "1", "7"})
	require.Len(t, got, 3)
	for i, id := range []string{"4", "1", "7"} {
		assert.Equal(t, id, got[i].ID, "position %d", i)
	}
}

func TestProductsByIDsEmptyInput(t *testing.T) {
	t.Parallel()
	c := New()
	assert.Empty(t, c.ProductsByIDs(nil))
}

func TestCategoriesAreDistinct(t *testing.T) {
	t.Parallel()
	c := New()

	cats := c.Categories()
	seen := map[string]bool{}
	for _, cat := range cats {
		require.False(t, seen[cat], "duplicate category %q", cat)
		seen[cat] = true
	}
	for _, want := range []string{"Electronics", "Books", "Apparel", "Home Goods"} {
		assert.True(t, seen[want], "missing category %q", want)
	}
}

func TestListFilters(t *testing.T) {
	t.Parallel()
	c := New()

	books := c.List("Books", "")
	require.NotEmpty(t, books)
	for _, p := range books {
		assert.Equal(t, "Books", p.Category)
	}

	laptops := c.List("", "laptop")
	require.Len(t, laptops, 1)
	assert.Equal(t, "1", laptops[0].ID)

	assert.Len(t, c.List("", ""), c.Len(), "unfiltered list should return every product")
}

func TestNewWithProductsDropsDuplicateIDs(t *testing.T) {
	t.Parallel()
	c := NewWithProducts([]Product{
		{ID: "a", Name: "first"},
		{ID: "a", Name: "second"},
	})
	require.Equal(t, 1, c.Len())
	p, _ := c.ProductByID("a")
	assert.Equal(t, "first", p.Name, "expected first entry to win")
}
