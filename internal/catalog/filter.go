package catalog

// FilterByCategory returns the products visible under a category
// filter. Empty filter means "all". Pure; an empty result is valid and
// the caller renders its own "no products" state.
func FilterByCategory(products []Product, categoryID string) []Product {
	if categoryID == "" {
		return products
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID == categoryID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// GroupByCategory buckets products under their category name for the
// products listing. Products without a joined category fall under
// "Sem categoria".
func GroupByCategory(products []Product) map[string][]Product {
	grouped := make(map[string][]Product)
	for _, p := range products {
		name := "Sem categoria"
		if p.Category != nil && p.Category.Name != "" {
			name = p.Category.Name
		}
		grouped[name] = append(grouped[name], p)
	}
	return grouped
}
