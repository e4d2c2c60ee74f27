package order

import "context"

// AddItemRequest is the wire payload of the order-line endpoint.
type AddItemRequest struct {
	OrderID         string `json:"order_id"`
	ProductID       string `json:"product_id"`
	Amount          int    `json:"amount"`
	SizeID          string `json:"size_id,omitempty"`
	SecondProductID string `json:"product_id_2,omitempty"`
	SecondSizeID    string `json:"size_id_2,omitempty"`
}

// Backend is the slice of the remote API the order flow needs.
type Backend interface {
	CreateOrder(ctx context.Context, token string, info DraftInfo) (string, error)
	AddItem(ctx context.Context, token string, item AddItemRequest) error
	SendOrder(ctx context.Context, token, orderID string) error
	FinishOrder(ctx context.Context, token, orderID string) error
	GetDetail(ctx context.Context, token, orderID string) ([]DetailItem, error)
}
