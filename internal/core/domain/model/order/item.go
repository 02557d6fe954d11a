package order

import (
	"fmt"
	"strings"

	"aquasphere/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one product line of an order. Prices are in pesos.
type Item struct {
	name      string
	unitPrice decimal.Decimal
	quantity  int
}

func NewItem(name string, unitPrice decimal.Decimal, quantity int) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item price", fmt.Errorf("%s is negative", unitPrice))
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{name: name, unitPrice: unitPrice.Round(2), quantity: quantity}, nil
}

func (i Item) Name() string {
	return i.name
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal is unit price times quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}
