package catalog

// Read model mirroring the backend wire shapes. Sizes and categories
// are reference data; products carry either one fixed price or a
// per-size price list inherited from the category or overridden
// individually.

type Size struct {
	ID      string `json:"id"`
	Name    string `json:"name"`    // "P", "M", "G", "F"
	Display string `json:"display"` // "Pequena", "Média", ...
	Order   int    `json:"order"`
}

type SizePrice struct {
	ID     string  `json:"id,omitempty"`
	SizeID string  `json:"size_id"`
	Price  float64 `json:"price"`
	Size   *Size   `json:"size,omitempty"`
}

type Category struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	HasSizes   bool        `json:"has_sizes"`
	SizePrices []SizePrice `json:"size_prices,omitempty"`
}

type ProductPrice struct {
	Size  Size    `json:"size"`
	Price float64 `json:"price"`
}

type Product struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Banner          string         `json:"banner"`
	Price           *float64       `json:"price"` // nil when the product has sizes
	HasCustomPrices bool           `json:"has_custom_prices"`
	HasSizes        bool           `json:"has_sizes"`
	CategoryID      string         `json:"category_id"`
	Category        *Category      `json:"category,omitempty"`
	Prices          []ProductPrice `json:"prices,omitempty"`
	CustomPrices    []SizePrice    `json:"custom_prices,omitempty"`
}
