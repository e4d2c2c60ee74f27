package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pizzadash/internal/catalog"
)

var (
	ErrMissingName = errors.New("category name is required")
	ErrMissingID   = errors.New("category_id is required")
)

// ValidationError is a form problem caught before any network call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type Backend interface {
	ListCategories(ctx context.Context, token string) ([]catalog.Category, error)
	CreateCategory(ctx context.Context, token string, category catalog.Category) error
	DeleteCategory(ctx context.Context, token, categoryID string) error
}

type SizeLister interface {
	ListSizes(ctx context.Context, token string) ([]catalog.Size, error)
}

type Service struct {
	backend Backend
	sizes   SizeLister
}

func NewService(backend Backend, sizes SizeLister) *Service {
	return &Service{backend: backend, sizes: sizes}
}

func (s *Service) List(ctx context.Context, token string) ([]catalog.Category, error) {
	return s.backend.ListCategories(ctx, token)
}

// Create validates the form before the network call: the name must be
// non-blank, and a sized category must price every known size with a
// positive value.
func (s *Service) Create(ctx context.Context, token string, category catalog.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return ErrMissingName
	}

	if category.HasSizes {
		sizes, err := s.sizes.ListSizes(ctx, token)
		if err != nil {
			return err
		}

		priced := make(map[string]float64, len(category.SizePrices))
		for _, sp := range category.SizePrices {
			priced[sp.SizeID] = sp.Price
		}

		var missing []string
		for _, size := range sizes {
			price, ok := priced[size.ID]
			if !ok {
				missing = append(missing, size.Display)
				continue
			}
			if price <= 0 {
				return &ValidationError{Msg: fmt.Sprintf("Preço inválido para %s!", size.Display)}
			}
		}
		if len(missing) > 0 {
			return &ValidationError{Msg: fmt.Sprintf("Preencha o preço para todos os tamanhos! Faltam: %s", strings.Join(missing, ", "))}
		}
	} else {
		category.SizePrices = nil
	}

	return s.backend.CreateCategory(ctx, token, category)
}

// Delete removes the category and reports its name for the success
// toast. The name lookup is best-effort: deletion proceeds even when
// it cannot be resolved.
func (s *Service) Delete(ctx context.Context, token, categoryID string) (string, error) {
	if categoryID == "" {
		return "", ErrMissingID
	}

	var name string
	if categories, err := s.backend.ListCategories(ctx, token); err == nil {
		for _, category := range categories {
			if category.ID == categoryID {
				name = category.Name
				break
			}
		}
	}

	return name, s.backend.DeleteCategory(ctx, token, categoryID)
}
