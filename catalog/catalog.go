// Package catalog implements the product browse pipeline: a conjunctive set
// of filter predicates followed by one of six sort orders. Apply is a pure
// function of (collection, options) and never mutates its input, which keeps
// it testable without a database.
package catalog

import (
	"sort"
	"strings"

	"usedtech_backend/models"
)

// Sort keys accepted by Options.SortBy. Any other value (including empty)
// falls back to name ascending.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
	SortPopular   = "popular"
)

// PriceRange is an inclusive [Min, Max] bound on product price.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Options describes one browse request. Zero-valued filters place no
// restriction; active filters must all pass for a product to remain.
type Options struct {
	Category    string
	Subcategory string
	Condition   string
	PriceRange  *PriceRange
	SearchText  string
	SortBy      string
}

// Matches reports whether a single product passes every active filter.
func Matches(p *models.Product, opts Options) bool {
	if opts.Category != "" && p.Category.Name != opts.Category {
		return false
	}
	if opts.Subcategory != "" && (p.Subcategory == nil || p.Subcategory.Name != opts.Subcategory) {
		return false
	}
	if opts.Condition != "" && p.Condition != opts.Condition {
		return false
	}
	if opts.PriceRange != nil && (p.Price < opts.PriceRange.Min || p.Price > opts.PriceRange.Max) {
		return false
	}
	if opts.SearchText != "" && !matchesSearch(p, opts.SearchText) {
		return false
	}
	return true
}

// Case-insensitive substring match against name, description, or any tag.
func matchesSearch(p *models.Product, text string) bool {
	q := strings.ToLower(text)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Apply filters the collection, then sorts the surviving subset. The result
// is a fresh slice; products comparing equal under the sort key keep their
// relative order from the input.
func Apply(products []models.Product, opts Options) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for i := range products {
		if Matches(&products[i], opts) {
			filtered = append(filtered, products[i])
		}
	}

	sort.SliceStable(filtered, less(opts.SortBy, filtered))
	return filtered
}

func less(sortBy string, products []models.Product) func(i, j int) bool {
	switch sortBy {
	case SortPriceLow:
		return func(i, j int) bool { return products[i].Price < products[j].Price }
	case SortPriceHigh:
		return func(i, j int) bool { return products[i].Price > products[j].Price }
	case SortRating:
		return func(i, j int) bool { return products[i].AverageRating > products[j].AverageRating }
	case SortNewest:
		return func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) }
	case SortPopular:
		return func(i, j int) bool { return products[i].Views > products[j].Views }
	default:
		return func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		}
	}
}
