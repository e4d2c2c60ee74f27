package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

var (
	ErrMissingName = errors.New("customer name is required")
	ErrEmptyOrder  = errors.New("order has no items")
)

type Service struct {
	backend    Backend
	drafts     *DraftStore
	openOrders *OpenOrders
}

func NewService(backend Backend, drafts *DraftStore, openOrders *OpenOrders) *Service {
	return &Service{
		backend:    backend,
		drafts:     drafts,
		openOrders: openOrders,
	}
}

func (s *Service) Drafts() *DraftStore {
	return s.drafts
}

// validateDraft runs every client-side check before any network call.
// LineItem carries no sized-product flag, so "a sized product always
// has a size" is not re-checked here: the Composer is the only item
// producer and refuses to emit such a line.
func validateDraft(info DraftInfo, items []LineItem) error {
	if strings.TrimSpace(info.Name) == "" {
		return ErrMissingName
	}
	if len(items) == 0 {
		return ErrEmptyOrder
	}
	if info.PaymentMethod != "" && !info.PaymentMethod.Valid() {
		return fmt.Errorf("unknown payment method %q", info.PaymentMethod)
	}
	for _, item := range items {
		if item.Amount < 1 {
			return fmt.Errorf("item %s has non-positive amount", item.ProductID)
		}
		if item.SecondProductID != "" && item.SecondSizeID == "" {
			return ErrHalfHalfPending
		}
	}
	return nil
}

// Submit runs the three-phase flow: create the header, attach each
// line item one request at a time, then send the order. There is no
// compensating transaction: if an item or the final send fails, the
// header and the items already attached stay on the backend as a
// draft, and the error names the step and the order id so staff can
// reconcile there. The draft is only discarded on full success.
func (s *Service) Submit(ctx context.Context, token, draftID string, info DraftInfo) (string, error) {
	composer, err := s.drafts.Get(draftID)
	if err != nil {
		return "", err
	}

	info.Name = strings.TrimSpace(info.Name)
	items := composer.Items()

	if err := validateDraft(info, items); err != nil {
		return "", err
	}

	orderID, err := s.backend.CreateOrder(ctx, token, info)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range items {
		req := AddItemRequest{
			OrderID:         orderID,
			ProductID:       item.ProductID,
			Amount:          item.Amount,
			SizeID:          item.SizeID,
			SecondProductID: item.SecondProductID,
			SecondSizeID:    item.SecondSizeID,
		}
		if err := s.backend.AddItem(ctx, token, req); err != nil {
			return orderID, fmt.Errorf("failed to add item %s to order %s: %w", item.ProductID, orderID, err)
		}
	}

	if err := s.backend.SendOrder(ctx, token, orderID); err != nil {
		return orderID, fmt.Errorf("failed to send order %s: %w", orderID, err)
	}

	s.drafts.Discard(draftID)
	return orderID, nil
}

// OpenDetail fetches an order's items and records it as the currently
// open order for this session.
func (s *Service) OpenDetail(ctx context.Context, token, orderID string) ([]DetailItem, error) {
	items, err := s.backend.GetDetail(ctx, token, orderID)
	if err != nil {
		return nil, err
	}
	s.openOrders.Open(token, orderID)
	return items, nil
}

func (s *Service) CloseDetail(token string) {
	s.openOrders.Close(token)
}

// Finish marks a single order as done and closes it if it was the open
// one.
func (s *Service) Finish(ctx context.Context, token, orderID string) error {
	if err := s.backend.FinishOrder(ctx, token, orderID); err != nil {
		return err
	}
	if current, ok := s.openOrders.Current(token); ok && current == orderID {
		s.openOrders.Close(token)
	}
	return nil
}

// FinishBatch finishes every selected order, one call each, and counts
// the outcomes instead of failing the whole batch on the first error.
func (s *Service) FinishBatch(ctx context.Context, token string, orderIDs []string) (succeeded, failed int) {
	for _, orderID := range orderIDs {
		if err := s.backend.FinishOrder(ctx, token, orderID); err != nil {
			log.Printf("failed to finish order %s: %v", orderID, err)
			failed++
			continue
		}
		succeeded++
	}
	return succeeded, failed
}

// BatchMessage renders the user-facing outcome of a bulk finish.
func BatchMessage(succeeded, failed int) string {
	switch {
	case failed > 0 && succeeded > 0:
		return fmt.Sprintf("%d pedido(s) finalizado(s) com sucesso, mas %d falharam!", succeeded, failed)
	case failed > 0:
		return fmt.Sprintf("Falha ao finalizar %d pedido(s)!", failed)
	default:
		return fmt.Sprintf("%d pedido(s) finalizado(s) com sucesso!", succeeded)
	}
}
