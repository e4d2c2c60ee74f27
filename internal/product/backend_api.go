package product

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/url"

	"pizzadash/internal/api"
)

type apiBackend struct {
	client *api.Client
}

func NewAPIBackend(client *api.Client) Backend {
	return &apiBackend{client: client}
}

// CreateProduct forwards the validated form as multipart, the encoding
// the backend product route expects.
func (b *apiBackend) CreateProduct(ctx context.Context, token string, fields map[string]string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to build form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to build form: %w", err)
	}

	if apiErr := b.client.PostForm(ctx, token, "/product", writer.FormDataContentType(), &body, nil); apiErr != nil {
		return apiErr
	}
	return nil
}

func (b *apiBackend) DeleteProduct(ctx context.Context, token, productID string) error {
	query := url.Values{}
	query.Set("product_id", productID)
	if apiErr := b.client.Delete(ctx, token, "/product", query); apiErr != nil {
		return apiErr
	}
	return nil
}
