package catalog

import (
	domcategory "example.com/storefront/internal/domain/category"
	domproduct "example.com/storefront/internal/domain/product"
)

// Catalog is one consistent snapshot of both collections. It is only ever
// built when both reads succeeded.
type Catalog struct {
	Products   []*domproduct.Product
	Categories []*domcategory.Category
}
