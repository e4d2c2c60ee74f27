package sales

import "context"

// Summary is the aggregation the backend returns, extended with the
// average ticket the dashboard derives.
type Summary struct {
	Total       float64 `json:"total"`
	Period      string  `json:"period"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	OrdersCount int     `json:"orders_count"`
	AvgTicket   float64 `json:"avg_ticket"`
}

type Backend interface {
	FetchSales(ctx context.Context, token string, filter Filter) (Summary, error)
}

type Service struct {
	backend Backend
}

func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

func (s *Service) Fetch(ctx context.Context, token string, filter Filter) (Summary, error) {
	summary, err := s.backend.FetchSales(ctx, token, filter)
	if err != nil {
		return Summary{}, err
	}
	summary.AvgTicket = AverageTicket(summary.Total, summary.OrdersCount)
	return summary, nil
}

// AverageTicket is total per finished order, zero when there are none.
func AverageTicket(total float64, ordersCount int) float64 {
	if ordersCount <= 0 {
		return 0
	}
	return total / float64(ordersCount)
}
