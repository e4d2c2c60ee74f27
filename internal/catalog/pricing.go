package catalog

// ResolvePrice resolves the unit price of a product at an optional
// size. The second return is false when the price is not defined:
// fixed-price product with no price set, sized product asked without a
// size, or a size the product carries no price for. A false here must
// block the add-to-order action upstream.
func ResolvePrice(p *Product, sizeID string) (float64, bool) {
	if p == nil {
		return 0, false
	}

	if !p.HasSizes {
		if p.Price == nil {
			return 0, false
		}
		return *p.Price, true
	}

	if sizeID == "" {
		return 0, false
	}

	for _, pp := range p.Prices {
		if pp.Size.ID == sizeID {
			return pp.Price, true
		}
	}

	// individual overrides may come without the joined price list
	for _, cp := range p.CustomPrices {
		if cp.SizeID == sizeID {
			return cp.Price, true
		}
	}

	return 0, false
}

// HalfHalfPrice prices a half-and-half combination: both products
// resolved at the same size, charged at the HIGHER of the two. This is
// the house rule, never the sum or the average. Fails when either half
// has no price at that size.
func HalfHalfPrice(a, b *Product, sizeID string) (float64, bool) {
	priceA, okA := ResolvePrice(a, sizeID)
	if !okA {
		return 0, false
	}
	priceB, okB := ResolvePrice(b, sizeID)
	if !okB {
		return 0, false
	}

	if priceB > priceA {
		return priceB, true
	}
	return priceA, true
}
