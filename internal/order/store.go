package order

import (
	"errors"
	"sync"

	"pizzadash/internal/catalog"

	"github.com/google/uuid"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftStore holds the active composers, keyed by a uuid handed to the
// form when it opens. Drafts are in-process only: a successful
// submission or an explicit discard removes them, a restart drops
// them.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]*Composer
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]*Composer)}
}

func (s *DraftStore) Create(products []catalog.Product) string {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[id] = NewComposer(products)
	return id
}

func (s *DraftStore) Get(id string) (*Composer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	composer, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return composer, nil
}

func (s *DraftStore) Discard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

// OpenOrders is the shared "currently open order" container injected
// at the composition root, so the detail view and the orders list read
// and write the same state without threading it through every handler.
// Keyed per session token.
type OpenOrders struct {
	mu   sync.Mutex
	open map[string]string // session token -> order id
}

func NewOpenOrders() *OpenOrders {
	return &OpenOrders{open: make(map[string]string)}
}

func (o *OpenOrders) Open(token, orderID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.open[token] = orderID
}

func (o *OpenOrders) Close(token string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.open, token)
}

func (o *OpenOrders) Current(token string) (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	orderID, ok := o.open[token]
	return orderID, ok
}
