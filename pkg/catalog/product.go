package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/catgraph/pkg/force"
)

// ErrDuplicateProduct is returned by [Validate] when two products share an ID.
var ErrDuplicateProduct = errors.New("duplicate product ID")

// allCategories lists the filter values that select every product.
var allCategories = []string{"all", "tutte"}

// Product is a catalog record.
type Product struct {
	ID          int64   `json:"id" toml:"id" bson:"_id"`
	Name        string  `json:"name" toml:"name" bson:"name"`
	Description string  `json:"description,omitempty" toml:"description" bson:"description,omitempty"`
	Category    string  `json:"category" toml:"category" bson:"category"`
	Price       float64 `json:"price" toml:"price" bson:"price"`
	Quantity    int     `json:"quantity" toml:"quantity" bson:"quantity"`
}

// Key returns the product ID as a layout node identifier.
func (p Product) Key() string { return strconv.FormatInt(p.ID, 10) }

// Item converts the product into a layout item.
func (p Product) Item() force.Item {
	return force.Item{
		ID:        p.Key(),
		Name:      p.Name,
		Category:  p.Category,
		Weight:    float64(p.Quantity),
		Magnitude: p.Price,
	}
}

// Items converts products into layout items, preserving order.
func Items(products []Product) []force.Item {
	items := make([]force.Item, len(products))
	for i, p := range products {
		items[i] = p.Item()
	}
	return items
}

// IsAll reports whether category is a filter value that selects everything.
func IsAll(category string) bool {
	if category == "" {
		return true
	}
	for _, all := range allCategories {
		if strings.EqualFold(category, all) {
			return true
		}
	}
	return false
}

// Filter returns the products of one category, in input order. Products
// without a category match force.DefaultCategory.
func Filter(products []Product, category string) []Product {
	if IsAll(category) {
		return products
	}
	var out []Product
	for _, p := range products {
		if categoryOf(p) == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories in first-occurrence order.
func Categories(products []Product) []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range products {
		c := categoryOf(p)
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// CategoryCounts returns the number of products per category.
func CategoryCounts(products []Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		counts[categoryOf(p)]++
	}
	return counts
}

// Validate checks that product IDs are unique.
func Validate(products []Product) error {
	seen := make(map[int64]bool, len(products))
	for _, p := range products {
		if seen[p.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateProduct, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

func categoryOf(p Product) string {
	return force.ByCategory(force.Item{Category: p.Category})
}
