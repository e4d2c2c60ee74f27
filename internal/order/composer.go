package order

import (
	"errors"
	"sync"

	"pizzadash/internal/catalog"
)

var (
	ErrUnknownProduct    = errors.New("unknown product")
	ErrSizeRequired      = errors.New("product requires a size")
	ErrPriceUndefined    = errors.New("price not defined for this selection")
	ErrSameFlavor        = errors.New("second flavor must be a different product")
	ErrFlavorNotSizeable = errors.New("second flavor must be a sized product")
	ErrHalfHalfPending   = errors.New("half-and-half selection is incomplete")
	ErrItemNotFound      = errors.New("item not in order")
)

// selection is the per-product composer state:
//
//	no size -> size selected -> half-half pending -> half-half complete
type selection struct {
	sizeID   string
	halfHalf bool
	secondID string
}

// LineItem is one row of the draft. Items with the same
// (product, size, second product) merge into one row by incrementing
// Amount.
type LineItem struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	SizeID          string  `json:"size_id,omitempty"`
	SecondProductID string  `json:"product_id_2,omitempty"`
	SecondSizeID    string  `json:"size_id_2,omitempty"`
	UnitPrice       float64 `json:"price"`
	Amount          int     `json:"amount"`
}

func (li LineItem) sameKey(productID, sizeID, secondID string) bool {
	return li.ProductID == productID && li.SizeID == sizeID && li.SecondProductID == secondID
}

// Composer holds the selection state of one order being built. It is
// created empty when the form opens and discarded after a successful
// submission. gin serves requests concurrently, hence the mutex.
type Composer struct {
	mu         sync.Mutex
	products   map[string]*catalog.Product
	selections map[string]*selection
	items      []LineItem
}

func NewComposer(products []catalog.Product) *Composer {
	index := make(map[string]*catalog.Product, len(products))
	for i := range products {
		index[products[i].ID] = &products[i]
	}
	return &Composer{
		products:   index,
		selections: make(map[string]*selection),
	}
}

func (c *Composer) selectionFor(productID string) *selection {
	sel, ok := c.selections[productID]
	if !ok {
		sel = &selection{}
		c.selections[productID] = sel
	}
	return sel
}

// SelectSize picks a size for a sized product. Any second-flavor
// choice already in progress is cleared so a stale combination cannot
// survive a size change.
func (c *Composer) SelectSize(productID, sizeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	product, ok := c.products[productID]
	if !ok {
		return ErrUnknownProduct
	}
	if !product.HasSizes {
		return ErrSizeRequired
	}

	sel := c.selectionFor(productID)
	sel.sizeID = sizeID
	sel.secondID = ""
	return nil
}

// ToggleHalfHalf turns the half-and-half mode on or off. Turning it
// off clears the second flavor. Turning it on requires a size, since
// combination pricing is only defined per size.
func (c *Composer) ToggleHalfHalf(productID string, enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.products[productID]; !ok {
		return ErrUnknownProduct
	}

	sel := c.selectionFor(productID)
	if enabled && sel.sizeID == "" {
		return ErrSizeRequired
	}

	sel.halfHalf = enabled
	if !enabled {
		sel.secondID = ""
	}
	return nil
}

// SelectSecondFlavor completes a pending half-and-half. The second
// flavor must be a different product and must itself be sized.
func (c *Composer) SelectSecondFlavor(productID, secondID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.products[productID]; !ok {
		return ErrUnknownProduct
	}

	sel := c.selectionFor(productID)
	if !sel.halfHalf || sel.sizeID == "" {
		return ErrHalfHalfPending
	}
	if secondID == productID {
		return ErrSameFlavor
	}

	second, ok := c.products[secondID]
	if !ok {
		return ErrUnknownProduct
	}
	if !second.HasSizes {
		return ErrFlavorNotSizeable
	}

	sel.secondID = secondID
	return nil
}

// CanAdd reports whether add-to-order is enabled for a product in its
// current selection state.
func (c *Composer) CanAdd(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.resolveSelection(productID)
	return err == nil
}

// resolveSelection validates the current state of a product and
// resolves its unit price. Caller holds the lock.
func (c *Composer) resolveSelection(productID string) (LineItem, error) {
	product, ok := c.products[productID]
	if !ok {
		return LineItem{}, ErrUnknownProduct
	}

	sel := c.selectionFor(productID)

	if !product.HasSizes {
		price, ok := catalog.ResolvePrice(product, "")
		if !ok {
			return LineItem{}, ErrPriceUndefined
		}
		return LineItem{
			ProductID:   productID,
			ProductName: product.Name,
			UnitPrice:   price,
			Amount:      1,
		}, nil
	}

	if sel.sizeID == "" {
		return LineItem{}, ErrSizeRequired
	}

	if sel.halfHalf {
		if sel.secondID == "" {
			return LineItem{}, ErrHalfHalfPending
		}
		second := c.products[sel.secondID]
		price, ok := catalog.HalfHalfPrice(product, second, sel.sizeID)
		if !ok {
			return LineItem{}, ErrPriceUndefined
		}
		return LineItem{
			ProductID:       productID,
			ProductName:     product.Name + " / " + second.Name,
			SizeID:          sel.sizeID,
			SecondProductID: sel.secondID,
			SecondSizeID:    sel.sizeID,
			UnitPrice:       price,
			Amount:          1,
		}, nil
	}

	price, ok := catalog.ResolvePrice(product, sel.sizeID)
	if !ok {
		return LineItem{}, ErrPriceUndefined
	}
	return LineItem{
		ProductID:   productID,
		ProductName: product.Name,
		SizeID:      sel.sizeID,
		UnitPrice:   price,
		Amount:      1,
	}, nil
}

// AddItem adds one unit of the product's current selection to the
// draft, merging with an existing row for the same combination.
func (c *Composer) AddItem(productID string) (LineItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, err := c.resolveSelection(productID)
	if err != nil {
		return LineItem{}, err
	}

	for i := range c.items {
		if c.items[i].sameKey(item.ProductID, item.SizeID, item.SecondProductID) {
			c.items[i].Amount++
			return c.items[i], nil
		}
	}

	c.items = append(c.items, item)
	return item, nil
}

// RemoveItem removes one unit of a combination. Dropping the last unit
// deletes the row; the draft never holds a zero-amount line.
func (c *Composer) RemoveItem(productID, sizeID, secondID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if !c.items[i].sameKey(productID, sizeID, secondID) {
			continue
		}
		if c.items[i].Amount > 1 {
			c.items[i].Amount--
		} else {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		return nil
	}
	return ErrItemNotFound
}

// Items returns a snapshot of the draft rows.
func (c *Composer) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total sums unit price times amount over the draft. The accumulator
// stays float64; rounding happens only at display time.
func (c *Composer) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.UnitPrice * float64(item.Amount)
	}
	return total
}
