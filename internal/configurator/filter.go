package configurator

import "renovo/internal/domain/catalog"

// FilterByCategory returns the products attached to subElementID, keeping
// input order. With no sub-element chosen the result is empty.
func FilterByCategory(products []catalog.Product, subElementID *int64) []catalog.Product {
	out := make([]catalog.Product, 0)
	if subElementID == nil {
		return out
	}
	for _, p := range products {
		if p.CategoryID == *subElementID {
			out = append(out, p)
		}
	}
	return out
}
