package catalog

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

func (b *apiBackend) ListCategories(ctx context.Context, token string) ([]Category, error) {
	var categories []Category
	if apiErr := b.client.Get(ctx, token, "/category", nil, &categories); apiErr != nil {
		return nil, apiErr
	}
	return categories, nil
}

func (b *apiBackend) ListProductsByCategory(ctx context.Context, token, categoryID string) ([]Product, error) {
	query := url.Values{}
	query.Set("category_id", categoryID)

	var products []Product
	if apiErr := b.client.Get(ctx, token, "/category/product", query, &products); apiErr != nil {
		return nil, apiErr
	}
	return products, nil
}

func (b *apiBackend) ListSizes(ctx context.Context, token string) ([]Size, error) {
	var sizes []Size
	if apiErr := b.client.Get(ctx, token, "/sizes", nil, &sizes); apiErr != nil {
		return nil, apiErr
	}
	return sizes, nil
}
