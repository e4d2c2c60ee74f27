package catalog

import (
	"context"
	"errors"
	"testing"
)

// --------------------------------------------------
// Mock Backend
// --------------------------------------------------

type MockBackend struct {
	categories  []Category
	products    map[string][]Product
	failFor     map[string]bool
	categoryErr error
}

func (m *MockBackend) ListCategories(ctx context.Context, token string) ([]Category, error) {
	if m.categoryErr != nil {
		return nil, m.categoryErr
	}
	return m.categories, nil
}

func (m *MockBackend) ListProductsByCategory(ctx context.Context, token, categoryID string) ([]Product, error) {
	if m.failFor[categoryID] {
		return nil, errors.New("backend unavailable")
	}
	return m.products[categoryID], nil
}

func (m *MockBackend) ListSizes(ctx context.Context, token string) ([]Size, error) {
	return nil, nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestFetchProducts_MergesAllCategories(t *testing.T) {
	backend := &MockBackend{
		categories: []Category{{ID: "c1", Name: "Pizzas"}, {ID: "c2", Name: "Bebidas"}},
		products: map[string][]Product{
			"c1": {{ID: "p1", CategoryID: "c1"}, {ID: "p2", CategoryID: "c1"}},
			"c2": {{ID: "p3", CategoryID: "c2"}},
		},
	}
	service := NewService(backend)

	products, err := service.FetchProducts(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	if products[0].Category == nil || products[0].Category.Name != "Pizzas" {
		t.Error("expected category to be joined onto products")
	}
}

func TestFetchProducts_SkipsBrokenCategory(t *testing.T) {
	backend := &MockBackend{
		categories: []Category{{ID: "c1"}, {ID: "c2"}},
		products: map[string][]Product{
			"c1": {{ID: "p1", CategoryID: "c1"}},
			"c2": {{ID: "p2", CategoryID: "c2"}},
		},
		failFor: map[string]bool{"c1": true},
	}
	service := NewService(backend)

	products, err := service.FetchProducts(context.Background(), "tok")
	if err != nil {
		t.Fatalf("one broken category must not fail the fetch: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p2" {
		t.Errorf("expected only products from the healthy category, got %v", products)
	}
}

func TestFetchProducts_CategoryListFailure(t *testing.T) {
	backend := &MockBackend{categoryErr: errors.New("boom")}
	service := NewService(backend)

	if _, err := service.FetchProducts(context.Background(), "tok"); err == nil {
		t.Fatal("expected error when the category list itself fails")
	}
}
