package sales

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

func (b *apiBackend) FetchSales(ctx context.Context, token string, filter Filter) (Summary, error) {
	query := url.Values{}
	query.Set("period", string(filter.Period))
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}
	if filter.StartDate != "" {
		query.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("end_date", filter.EndDate)
	}

	var summary Summary
	if apiErr := b.client.Get(ctx, token, "/order/sales", query, &summary); apiErr != nil {
		return Summary{}, apiErr
	}
	return summary, nil
}
