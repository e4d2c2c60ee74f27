package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"pizzadash/internal/catalog"

	"github.com/google/uuid"
)

var (
	ErrMissingFields = errors.New("product name and category are required")
	ErrMissingID     = errors.New("product_id is required")
)

// ValidationError is a form problem caught before any network call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// CreateForm carries the raw product form. Prices arrive as strings,
// exactly as typed.
type CreateForm struct {
	Name            string
	Description     string
	CategoryID      string
	Price           string
	HasCustomPrices bool
	SizePrices      map[string]string // size id -> raw price
	Banner          multipart.File
	BannerName      string
}

type Backend interface {
	CreateProduct(ctx context.Context, token string, fields map[string]string) error
	DeleteProduct(ctx context.Context, token, productID string) error
}

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	backend Backend
	catalog *catalog.Service
	storage Storage
}

func NewService(backend Backend, catalogService *catalog.Service, storage Storage) *Service {
	return &Service{backend: backend, catalog: catalogService, storage: storage}
}

// List returns the catalog grouped by category name for the products
// page.
func (s *Service) List(ctx context.Context, token string) (map[string][]catalog.Product, error) {
	products, err := s.catalog.FetchProducts(ctx, token)
	if err != nil {
		return nil, err
	}
	return catalog.GroupByCategory(products), nil
}

// Create validates the form against the selected category, uploads the
// banner when one was attached, and forwards the product to the
// backend. Sized categories either inherit the category price list or
// override it with a full custom list; fixed-price categories need one
// positive price.
func (s *Service) Create(ctx context.Context, token string, form CreateForm) error {
	if strings.TrimSpace(form.Name) == "" || form.CategoryID == "" {
		return ErrMissingFields
	}

	categories, err := s.catalog.FetchCategories(ctx, token)
	if err != nil {
		return err
	}
	var selected *catalog.Category
	for i := range categories {
		if categories[i].ID == form.CategoryID {
			selected = &categories[i]
			break
		}
	}
	if selected == nil {
		return &ValidationError{Msg: "Categoria não encontrada!"}
	}

	fields := map[string]string{
		"name":        strings.TrimSpace(form.Name),
		"description": form.Description, // backend requires the field, even empty
		"category_id": selected.ID,
	}

	if selected.HasSizes {
		if form.HasCustomPrices {
			sizes, err := s.catalog.FetchSizes(ctx, token)
			if err != nil {
				return err
			}
			customPrices, err := buildCustomPrices(sizes, form.SizePrices)
			if err != nil {
				return err
			}
			encoded, marshalErr := json.Marshal(customPrices)
			if marshalErr != nil {
				return fmt.Errorf("failed to encode custom prices: %w", marshalErr)
			}
			fields["has_custom_prices"] = "true"
			fields["custom_prices"] = string(encoded)
		}
		// without custom prices the product inherits the category list
	} else {
		price, err := parsePrice(form.Price)
		if err != nil {
			return err
		}
		fields["price"] = strconv.FormatFloat(price, 'f', 2, 64)
	}

	if form.Banner != nil {
		ext := strings.ToLower(filepath.Ext(form.BannerName))
		if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
			return &ValidationError{Msg: "Apenas são aceitos arquivos PNG e JPEG."}
		}
		key := fmt.Sprintf("banners/%s%s", uuid.New().String(), ext)
		bannerURL, err := s.storage.Upload(ctx, key, form.Banner)
		if err != nil {
			return fmt.Errorf("failed to upload banner: %w", err)
		}
		fields["banner"] = bannerURL
	}

	return s.backend.CreateProduct(ctx, token, fields)
}

func (s *Service) Delete(ctx context.Context, token, productID string) error {
	if productID == "" {
		return ErrMissingID
	}
	return s.backend.DeleteProduct(ctx, token, productID)
}

func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ValidationError{Msg: "Digite o preço do produto!"}
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price <= 0 {
		return 0, &ValidationError{Msg: "Preço inválido!"}
	}
	return price, nil
}

// buildCustomPrices requires every known size to carry a valid price
// when individual pricing is on.
func buildCustomPrices(sizes []catalog.Size, raw map[string]string) ([]catalog.SizePrice, error) {
	var missing []string
	prices := make([]catalog.SizePrice, 0, len(sizes))

	for _, size := range sizes {
		value, ok := raw[size.ID]
		if !ok || strings.TrimSpace(value) == "" {
			missing = append(missing, size.Display)
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || price <= 0 {
			return nil, &ValidationError{Msg: fmt.Sprintf("Preço inválido para %s!", size.Display)}
		}
		prices = append(prices, catalog.SizePrice{SizeID: size.ID, Price: price})
	}

	if len(missing) > 0 {
		return nil, &ValidationError{
			Msg: fmt.Sprintf("Preencha o preço para todos os tamanhos! Faltam: %s", strings.Join(missing, ", ")),
		}
	}
	return prices, nil
}
