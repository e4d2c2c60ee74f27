package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pizzadash/internal/catalog"
)

type MockBackend struct {
	categories []catalog.Category
	created    []catalog.Category
	deleted    []string
}

func (m *MockBackend) ListCategories(ctx context.Context, token string) ([]catalog.Category, error) {
	return m.categories, nil
}

func (m *MockBackend) CreateCategory(ctx context.Context, token string, category catalog.Category) error {
	m.created = append(m.created, category)
	return nil
}

func (m *MockBackend) DeleteCategory(ctx context.Context, token, categoryID string) error {
	m.deleted = append(m.deleted, categoryID)
	return nil
}

type MockSizes struct {
	sizes []catalog.Size
}

func (m *MockSizes) ListSizes(ctx context.Context, token string) ([]catalog.Size, error) {
	return m.sizes, nil
}

func twoSizes() *MockSizes {
	return &MockSizes{sizes: []catalog.Size{
		{ID: "size-p", Name: "P", Display: "Pequena"},
		{ID: "size-m", Name: "M", Display: "Média"},
	}}
}

func TestCreate_MissingName(t *testing.T) {
	service := NewService(&MockBackend{}, twoSizes())

	err := service.Create(context.Background(), "tok", catalog.Category{Name: "   "})
	if !errors.Is(err, ErrMissingName) {
		t.Errorf("expected ErrMissingName, got %v", err)
	}
}

func TestCreate_WithoutSizes(t *testing.T) {
	backend := &MockBackend{}
	service := NewService(backend, twoSizes())

	err := service.Create(context.Background(), "tok", catalog.Category{Name: "Bebidas"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(backend.created) != 1 || backend.created[0].HasSizes {
		t.Errorf("unexpected created category: %+v", backend.created)
	}
}

func TestCreate_SizedMissingPrice(t *testing.T) {
	backend := &MockBackend{}
	service := NewService(backend, twoSizes())

	err := service.Create(context.Background(), "tok", catalog.Category{
		Name:       "Pizzas",
		HasSizes:   true,
		SizePrices: []catalog.SizePrice{{SizeID: "size-p", Price: 20}},
	})

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(validation.Msg, "Média") {
		t.Errorf("expected the missing size name in the message, got %q", validation.Msg)
	}
	if len(backend.created) != 0 {
		t.Error("validation failure must block the network call")
	}
}

func TestCreate_SizedInvalidPrice(t *testing.T) {
	service := NewService(&MockBackend{}, twoSizes())

	err := service.Create(context.Background(), "tok", catalog.Category{
		Name:     "Pizzas",
		HasSizes: true,
		SizePrices: []catalog.SizePrice{
			{SizeID: "size-p", Price: 20},
			{SizeID: "size-m", Price: 0},
		},
	})

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreate_SizedAllPriced(t *testing.T) {
	backend := &MockBackend{}
	service := NewService(backend, twoSizes())

	err := service.Create(context.Background(), "tok", catalog.Category{
		Name:     "Pizzas",
		HasSizes: true,
		SizePrices: []catalog.SizePrice{
			{SizeID: "size-p", Price: 20},
			{SizeID: "size-m", Price: 30},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(backend.created) != 1 {
		t.Fatalf("expected 1 created category, got %d", len(backend.created))
	}
}

func TestDelete_ResolvesName(t *testing.T) {
	backend := &MockBackend{categories: []catalog.Category{
		{ID: "cat-1", Name: "Pizzas"},
		{ID: "cat-2", Name: "Bebidas"},
	}}
	service := NewService(backend, twoSizes())

	name, err := service.Delete(context.Background(), "tok", "cat-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Bebidas" {
		t.Errorf("expected name Bebidas, got %q", name)
	}
	if len(backend.deleted) != 1 || backend.deleted[0] != "cat-2" {
		t.Errorf("unexpected delete calls: %v", backend.deleted)
	}
}

func TestDelete_UnknownIDStillDeletes(t *testing.T) {
	backend := &MockBackend{}
	service := NewService(backend, twoSizes())

	name, err := service.Delete(context.Background(), "tok", "cat-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "" {
		t.Errorf("expected empty name, got %q", name)
	}
	if len(backend.deleted) != 1 {
		t.Errorf("expected the delete call to go through, got %v", backend.deleted)
	}
}

func TestDelete_MissingID(t *testing.T) {
	backend := &MockBackend{}
	service := NewService(backend, twoSizes())

	if _, err := service.Delete(context.Background(), "tok", ""); !errors.Is(err, ErrMissingID) {
		t.Errorf("expected ErrMissingID, got %v", err)
	}
	if len(backend.deleted) != 0 {
		t.Error("missing id must not hit the network")
	}
}
