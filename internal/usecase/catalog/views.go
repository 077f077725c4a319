package catalog

import (
	"slices"

	domproduct "example.com/storefront/internal/domain/product"
)

// DeriveLatest returns up to n products ordered by creation time, newest
// first. Products with equal timestamps keep their input order. The input
// slice is left untouched.
func DeriveLatest(products []*domproduct.Product, n int) []*domproduct.Product {
	if n <= 0 {
		return []*domproduct.Product{}
	}

	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, func(a, b *domproduct.Product) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = []*domproduct.Product{}
	}
	return sorted
}

type CategoryGroup struct {
	Category domproduct.CategoryRef
	Products []*domproduct.Product
}

// GroupByCategory buckets products by category id. Groups appear in the order
// their first product appears.
func GroupByCategory(products []*domproduct.Product) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := make(map[int64]int)

	for _, p := range products {
		i, ok := index[p.Category.ID]
		if !ok {
			i = len(groups)
			index[p.Category.ID] = i
			groups = append(groups, CategoryGroup{Category: p.Category})
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	return groups
}
