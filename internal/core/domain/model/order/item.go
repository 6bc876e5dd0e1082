package order

import (
	"errors"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized
// Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem or NewItemWithTotal")

// Item is a single order line. It is an immutable value object; the line
// total is trusted from upstream when provided and derived from unit price
// and quantity otherwise.
type Item struct {
	productID string
	name      string
	quantity  int
	unitPrice decimal.Decimal
	lineTotal decimal.Decimal
	guard     guard.ConstructorGuard
}

// NewItem creates a line item deriving the line total as unitPrice*quantity.
func NewItem(productID, name string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	return newItem(productID, name, quantity, unitPrice,
		unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
}

// NewItemWithTotal creates a line item trusting the upstream line total over
// the derived value.
func NewItemWithTotal(
	productID, name string, quantity int, unitPrice, lineTotal decimal.Decimal,
) (Item, error) {
	return newItem(productID, name, quantity, unitPrice, lineTotal)
}

func newItem(
	productID, name string, quantity int, unitPrice, lineTotal decimal.Decimal,
) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.name = name
	item.unitPrice = unitPrice
	item.lineTotal = lineTotal
	return item, nil
}

// Validate checks that the Item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the product identifier the line refers to.
func (i Item) ProductID() string {
	return i.productID
}

// Name returns the display name of the product.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// TotalPrice returns the line total.
func (i Item) TotalPrice() decimal.Decimal {
	return i.lineTotal
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	i.quantity = quantity
	return nil
}
