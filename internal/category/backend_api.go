package category

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

func (b *apiBackend) ListCategories(ctx context.Context, token string) ([]catalog.Category, error) {
	var categories []catalog.Category
	if apiErr := b.client.Get(ctx, token, "/category", nil, &categories); apiErr != nil {
		return nil, apiErr
	}
	return categories, nil
}

func (b *apiBackend) CreateCategory(ctx context.Context, token string, category catalog.Category) error {
	payload := map[string]interface{}{
		"name":      category.Name,
		"has_sizes": category.HasSizes,
	}
	if category.HasSizes {
		payload["size_prices"] = category.SizePrices
	}
	if apiErr := b.client.PostJSON(ctx, token, "/category", payload, nil); apiErr != nil {
		return apiErr
	}
	return nil
}

func (b *apiBackend) DeleteCategory(ctx context.Context, token, categoryID string) error {
	query := url.Values{}
	query.Set("category_id", categoryID)
	if apiErr := b.client.Delete(ctx, token, "/category", query); apiErr != nil {
		return apiErr
	}
	return nil
}
