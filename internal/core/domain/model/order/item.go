package order

import (
	"fmt"
	"strings"

	"storeops/internal/pkg/errs"
)

// Item is a single product line within an order. It is an immutable value
// object: the subtotal is computed once at construction and never changes,
// and items are never shared between orders.
type Item struct {
	product   string
	quantity  int
	unitPrice float64
	subtotal  float64
}

// newItem validates and builds a line item. The product must be non-blank,
// and quantity and unit price must both be greater than zero.
func newItem(product string, quantity int, unitPrice float64) (Item, error) {
	if strings.TrimSpace(product) == "" {
		return Item{}, errs.NewValidationError("product")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValidationErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice <= 0 {
		return Item{}, errs.NewValidationErrorWithCause("unit price",
			fmt.Errorf("%g is not greater than 0", unitPrice))
	}

	return Item{
		product:   product,
		quantity:  quantity,
		unitPrice: unitPrice,
		subtotal:  float64(quantity) * unitPrice,
	}, nil
}

// Product returns the product name.
func (i Item) Product() string {
	return i.product
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Subtotal returns quantity times unit price, fixed at construction.
func (i Item) Subtotal() float64 {
	return i.subtotal
}

// String returns a short human-readable representation of the item.
func (i Item) String() string {
	return fmt.Sprintf("Item{product=%s, quantity=%d, unitPrice=%g, subtotal=%g}",
		i.product, i.quantity, i.unitPrice, i.subtotal)
}
