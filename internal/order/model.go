package order

import "pizzadash/internal/catalog"

// Payment methods use the backend wire values.
type PaymentMethod string

const (
	PaymentPix   PaymentMethod = "PIX"
	PaymentCard  PaymentMethod = "CARTAO"
	PaymentCash  PaymentMethod = "DINHEIRO"
	PaymentOther PaymentMethod = "OUTROS"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentPix, PaymentCard, PaymentCash, PaymentOther:
		return true
	}
	return false
}

// DraftInfo is the customer data entered on the order form. Items live
// in the Composer.
type DraftInfo struct {
	Name          string        `json:"name"`
	Address       string        `json:"address,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
}

// Header is the order header as the backend returns it.
type Header struct {
	ID            string        `json:"id"`
	Table         int           `json:"table"`
	Name          string        `json:"name"`
	Address       *string       `json:"address,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Draft         bool          `json:"draft"`
	Status        bool          `json:"status"`
}

// DetailItem is one persisted order row joined with its products and
// sizes, as served by the order detail endpoint.
type DetailItem struct {
	ID              string           `json:"id"`
	Amount          int              `json:"amount"`
	OrderID         string           `json:"order_id"`
	ProductID       string           `json:"product_id"`
	SizeID          *string          `json:"size_id"`
	SecondProductID *string          `json:"product_id_2,omitempty"`
	SecondSizeID    *string          `json:"size_id_2,omitempty"`
	Price           float64          `json:"price"` // historical, at time of sale
	Product         catalog.Product  `json:"product"`
	SecondProduct   *catalog.Product `json:"product_2,omitempty"`
	Size            *catalog.Size    `json:"size"`
	SecondSize      *catalog.Size    `json:"size_2,omitempty"`
	Order           Header           `json:"order"`
}

// CalculateTotal sums the historical item prices of a persisted order.
func CalculateTotal(items []DetailItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Amount)
	}
	return total
}
