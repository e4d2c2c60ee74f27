package order

import (
	"errors"
	"testing"

	"pizzadash/internal/catalog"
)

func testCatalog() []catalog.Product {
	soda := 7.50
	return []catalog.Product{
		{
			ID:       "pizza-x",
			Name:     "Calabresa",
			HasSizes: true,
			Prices: []catalog.ProductPrice{
				{Size: catalog.Size{ID: "size-p"}, Price: 20},
				{Size: catalog.Size{ID: "size-m"}, Price: 30},
			},
		},
		{
			ID:       "pizza-y",
			Name:     "Quatro Queijos",
			HasSizes: true,
			Prices: []catalog.ProductPrice{
				{Size: catalog.Size{ID: "size-p"}, Price: 22},
				{Size: catalog.Size{ID: "size-m"}, Price: 35},
			},
		},
		{ID: "soda", Name: "Refrigerante", Price: &soda},
		{ID: "broken", Name: "Sem preço"},
	}
}

func TestAddItem_FixedPriceProduct(t *testing.T) {
	c := NewComposer(testCatalog())

	item, err := c.AddItem("soda")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.UnitPrice != 7.50 || item.Amount != 1 {
		t.Errorf("unexpected item %+v", item)
	}
}

func TestAddItem_UndefinedPriceBlocked(t *testing.T) {
	c := NewComposer(testCatalog())

	if c.CanAdd("broken") {
		t.Error("add must be disabled when the price is undefined")
	}
	if _, err := c.AddItem("broken"); !errors.Is(err, ErrPriceUndefined) {
		t.Errorf("expected ErrPriceUndefined, got %v", err)
	}
}

func TestAddItem_SizedProductNeedsSize(t *testing.T) {
	c := NewComposer(testCatalog())

	if c.CanAdd("pizza-x") {
		t.Error("add must be disabled before a size is chosen")
	}
	if _, err := c.AddItem("pizza-x"); !errors.Is(err, ErrSizeRequired) {
		t.Errorf("expected ErrSizeRequired, got %v", err)
	}

	if err := c.SelectSize("pizza-x", "size-m"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item, err := c.AddItem("pizza-x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.UnitPrice != 30 || item.SizeID != "size-m" {
		t.Errorf("unexpected item %+v", item)
	}
}

func TestAddItem_MergesSameCombination(t *testing.T) {
	c := NewComposer(testCatalog())
	c.SelectSize("pizza-x", "size-m")

	c.AddItem("pizza-x")
	item, err := c.AddItem("pizza-x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.Amount != 2 {
		t.Errorf("expected merged amount 2, got %d", item.Amount)
	}
	if got := len(c.Items()); got != 1 {
		t.Errorf("expected 1 line item, got %d", got)
	}
}

func TestAddItem_DifferentSizeIsNewLine(t *testing.T) {
	c := NewComposer(testCatalog())

	c.SelectSize("pizza-x", "size-m")
	c.AddItem("pizza-x")
	c.SelectSize("pizza-x", "size-p")
	c.AddItem("pizza-x")

	if got := len(c.Items()); got != 2 {
		t.Errorf("expected 2 line items for 2 sizes, got %d", got)
	}
}

func TestRemoveItem_DecrementsThenDeletes(t *testing.T) {
	c := NewComposer(testCatalog())
	c.SelectSize("pizza-x", "size-m")
	c.AddItem("pizza-x")
	c.AddItem("pizza-x")

	if err := c.RemoveItem("pizza-x", "size-m", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := c.Items()
	if len(items) != 1 || items[0].Amount != 1 {
		t.Fatalf("expected one item with amount 1, got %+v", items)
	}

	if err := c.RemoveItem("pizza-x", "size-m", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(c.Items()); got != 0 {
		t.Errorf("removing the last unit must delete the line, got %d lines", got)
	}

	if err := c.RemoveItem("pizza-x", "size-m", ""); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestHalfHalf_Flow(t *testing.T) {
	c := NewComposer(testCatalog())

	// half-and-half needs a size first
	if err := c.ToggleHalfHalf("pizza-x", true); !errors.Is(err, ErrSizeRequired) {
		t.Errorf("expected ErrSizeRequired, got %v", err)
	}

	c.SelectSize("pizza-x", "size-m")
	if err := c.ToggleHalfHalf("pizza-x", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// pending: add disabled
	if c.CanAdd("pizza-x") {
		t.Error("add must be disabled while half-and-half is pending")
	}

	// same product rejected
	if err := c.SelectSecondFlavor("pizza-x", "pizza-x"); !errors.Is(err, ErrSameFlavor) {
		t.Errorf("expected ErrSameFlavor, got %v", err)
	}
	// fixed-price product rejected as second flavor
	if err := c.SelectSecondFlavor("pizza-x", "soda"); !errors.Is(err, ErrFlavorNotSizeable) {
		t.Errorf("expected ErrFlavorNotSizeable, got %v", err)
	}

	if err := c.SelectSecondFlavor("pizza-x", "pizza-y"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item, err := c.AddItem("pizza-x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.UnitPrice != 35 {
		t.Errorf("expected max(30,35)=35, got %v", item.UnitPrice)
	}
	if item.SecondProductID != "pizza-y" || item.SecondSizeID != "size-m" {
		t.Errorf("second flavor must share the size: %+v", item)
	}
}

func TestHalfHalf_SizeChangeClearsSecondFlavor(t *testing.T) {
	c := NewComposer(testCatalog())
	c.SelectSize("pizza-x", "size-m")
	c.ToggleHalfHalf("pizza-x", true)
	c.SelectSecondFlavor("pizza-x", "pizza-y")

	// changing size must drop the stale combination
	c.SelectSize("pizza-x", "size-p")
	if c.CanAdd("pizza-x") {
		t.Error("second flavor must be cleared on size change")
	}

	c.SelectSecondFlavor("pizza-x", "pizza-y")
	item, err := c.AddItem("pizza-x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.UnitPrice != 22 {
		t.Errorf("expected max(20,22)=22 at size P, got %v", item.UnitPrice)
	}
}

func TestHalfHalf_ToggleOffClearsSecondFlavor(t *testing.T) {
	c := NewComposer(testCatalog())
	c.SelectSize("pizza-x", "size-m")
	c.ToggleHalfHalf("pizza-x", true)
	c.SelectSecondFlavor("pizza-x", "pizza-y")

	c.ToggleHalfHalf("pizza-x", false)

	item, err := c.AddItem("pizza-x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.SecondProductID != "" {
		t.Errorf("toggling off must clear the second flavor, got %+v", item)
	}
	if item.UnitPrice != 30 {
		t.Errorf("expected plain size price 30, got %v", item.UnitPrice)
	}
}

func TestTotal(t *testing.T) {
	soda := 7.50
	ten := 10.00
	c := NewComposer([]catalog.Product{
		{ID: "a", Name: "A", Price: &ten},
		{ID: "b", Name: "B", Price: &soda},
	})

	c.AddItem("a")
	c.AddItem("a")
	c.AddItem("b")

	if total := c.Total(); total != 27.50 {
		t.Errorf("expected total 27.50, got %v", total)
	}
}
