package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is one purchasable item. The product set is fixed at process
// start; entries are never mutated at runtime.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageID     string          `json:"image_id"`
}

// Catalog is the static, read-only product set.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// New returns a catalog seeded with the storefront's product set.
func New() *Catalog {
	return NewWithProducts(seedProducts())
}

// NewWithProducts builds a catalog from the given products. Later entries
// with a duplicate id are dropped.
func NewWithProducts(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]Product, len(products)),
	}
	for _, p := range products {
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.byID[p.ID] = p
		c.products = append(c.products, p)
	}
	return c
}

// ProductByID looks up a product. Absence is a valid result, not an error.
func (c *Catalog) ProductByID(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ProductsByIDs resolves ids to products, preserving input order and
// silently dropping ids that are not in the catalog.
func (c *Catalog) ProductsByIDs(ids []string) []Product {
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category names in first-appearance order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{}, len(c.products))
	out := make([]string, 0, 8)
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// List returns the products matching the optional category and free-text
// query filters, in catalog order. An empty filter matches everything.
func (c *Catalog) List(category, query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
