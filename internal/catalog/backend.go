package catalog

import "context"

// Backend is the slice of the remote API the catalog needs.
type Backend interface {
	ListCategories(ctx context.Context, token string) ([]Category, error)
	ListProductsByCategory(ctx context.Context, token, categoryID string) ([]Product, error)
	ListSizes(ctx context.Context, token string) ([]Size, error)
}
