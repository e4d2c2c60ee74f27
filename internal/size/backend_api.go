package size

import (
	"context"
	"net/url"

	"pizzadash/internal/api"
	"pizzadash/internal/catalog"
)

type apiBackend struct {
	client *api.Client
}

func NewAPIBackend(client *api.Client) Backend {
	return &apiBackend{client: client}
}

func (b *apiBackend) ListSizes(ctx context.Context, token string) ([]catalog.Size, error) {
	var sizes []catalog.Size
	if apiErr := b.client.Get(ctx, token, "/sizes", nil, &sizes); apiErr != nil {
		return nil, apiErr
	}
	return sizes, nil
}

func (b *apiBackend) CreateSize(ctx context.Context, token string, size catalog.Size) error {
	payload := map[string]interface{}{
		"name":    size.Name,
		"display": size.Display,
		"order":   size.Order,
	}
	if apiErr := b.client.PostJSON(ctx, token, "/size", payload, nil); apiErr != nil {
		return apiErr
	}
	return nil
}

func (b *apiBackend) DeleteSize(ctx context.Context, token, sizeID string) error {
	query := url.Values{}
	query.Set("size_id", sizeID)
	if apiErr := b.client.Delete(ctx, token, "/size", query); apiErr != nil {
		return apiErr
	}
	return nil
}
