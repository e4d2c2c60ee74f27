package size

import (
	"context"
	"errors"
	"log"

	"pizzadash/internal/catalog"
)

var (
	ErrMissingFields = errors.New("name, display and order are required")
	ErrMissingID     = errors.New("size_id is required")
)

// DefaultSizes is the standard pizzeria portion set.
var DefaultSizes = []catalog.Size{
	{Name: "P", Display: "Pequena", Order: 1},
	{Name: "M", Display: "Média", Order: 2},
	{Name: "G", Display: "Grande", Order: 3},
	{Name: "F", Display: "Família", Order: 4},
}

type Backend interface {
	ListSizes(ctx context.Context, token string) ([]catalog.Size, error)
	CreateSize(ctx context.Context, token string, size catalog.Size) error
	DeleteSize(ctx context.Context, token, sizeID string) error
}

type Service struct {
	backend Backend
}

func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

func (s *Service) List(ctx context.Context, token string) ([]catalog.Size, error) {
	return s.backend.ListSizes(ctx, token)
}

func (s *Service) Create(ctx context.Context, token string, size catalog.Size) error {
	if size.Name == "" || size.Display == "" || size.Order <= 0 {
		return ErrMissingFields
	}
	return s.backend.CreateSize(ctx, token, size)
}

// CreateDefaults creates the missing members of the default P/M/G/F
// set, skipping names that already exist, and reports how many were
// created. A failure mid-way stops the run and reports what got
// through.
func (s *Service) CreateDefaults(ctx context.Context, token string) (created int, err error) {
	existing, err := s.backend.ListSizes(ctx, token)
	if err != nil {
		return 0, err
	}

	known := make(map[string]bool, len(existing))
	for _, size := range existing {
		known[size.Name] = true
	}

	for _, size := range DefaultSizes {
		if known[size.Name] {
			continue
		}
		if err := s.backend.CreateSize(ctx, token, size); err != nil {
			log.Printf("failed to create default size %s: %v", size.Name, err)
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *Service) Delete(ctx context.Context, token, sizeID string) error {
	if sizeID == "" {
		return ErrMissingID
	}
	return s.backend.DeleteSize(ctx, token, sizeID)
}
