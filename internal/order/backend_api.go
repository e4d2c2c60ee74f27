package order

import (
	"context"
	"net/url"

	"pizzadash/internal/api"
)

type apiBackend struct {
	client *api.Client
}

func NewAPIBackend(client *api.Client) Backend {
	return &apiBackend{client: client}
}

func (b *apiBackend) CreateOrder(ctx context.Context, token string, info DraftInfo) (string, error) {
	payload := map[string]interface{}{
		"table": 0,
		"name":  info.Name,
	}
	if info.Address != "" {
		payload["address"] = info.Address
	}
	if info.PaymentMethod != "" {
		payload["payment_method"] = info.PaymentMethod
	}

	var created Header
	if apiErr := b.client.PostJSON(ctx, token, "/order", payload, &created); apiErr != nil {
		return "", apiErr
	}
	return created.ID, nil
}

func (b *apiBackend) AddItem(ctx context.Context, token string, item AddItemRequest) error {
	if apiErr := b.client.PostJSON(ctx, token, "/order/add", item, nil); apiErr != nil {
		return apiErr
	}
	return nil
}

func (b *apiBackend) SendOrder(ctx context.Context, token, orderID string) error {
	payload := map[string]string{"order_id": orderID}
	if apiErr := b.client.PutJSON(ctx, token, "/order/send", payload, nil); apiErr != nil {
		return apiErr
	}
	return nil
}

func (b *apiBackend) FinishOrder(ctx context.Context, token, orderID string) error {
	payload := map[string]string{"order_id": orderID}
	if apiErr := b.client.PutJSON(ctx, token, "/order/finish", payload, nil); apiErr != nil {
		return apiErr
	}
	return nil
}

func (b *apiBackend) GetDetail(ctx context.Context, token, orderID string) ([]DetailItem, error) {
	query := url.Values{}
	query.Set("order_id", orderID)

	var items []DetailItem
	if apiErr := b.client.Get(ctx, token, "/order/detail", query, &items); apiErr != nil {
		return nil, apiErr
	}
	return items, nil
}
