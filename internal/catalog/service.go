package catalog

import (
	"context"
	"log"
)

type Service struct {
	backend Backend
}

func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// FetchProducts gathers the whole catalog: categories first, then the
// products of each. A category whose product fetch fails is skipped
// with a log line so one broken category does not empty the order
// form.
func (s *Service) FetchProducts(ctx context.Context, token string) ([]Product, error) {
	categories, err := s.backend.ListCategories(ctx, token)
	if err != nil {
		return nil, err
	}

	var all []Product
	for _, category := range categories {
		cat := category
		products, err := s.backend.ListProductsByCategory(ctx, token, category.ID)
		if err != nil {
			log.Printf("failed to fetch products for category %s: %v", category.ID, err)
			continue
		}
		for i := range products {
			if products[i].Category == nil {
				products[i].Category = &cat
			}
		}
		all = append(all, products...)
	}

	return all, nil
}

func (s *Service) FetchCategories(ctx context.Context, token string) ([]Category, error) {
	return s.backend.ListCategories(ctx, token)
}

func (s *Service) FetchSizes(ctx context.Context, token string) ([]Size, error) {
	return s.backend.ListSizes(ctx, token)
}
