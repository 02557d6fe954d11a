package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"
	"aquasphere/internal/pkg/errs"
	"aquasphere/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested product line as it arrives from checkout.
type OrderLine struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// CreateOrderCommand represents a customer placing a new order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, ownerID, "gcash",
//	    []OrderLine{{Name: "Slim gallon refill", UnitPrice: decimal.NewFromInt(25), Quantity: 4}},
//	    decimal.NullDecimal{}, addressJSON, "2026-10-17", "AM")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	ownerID       kernel.UUID
	paymentMethod order.PaymentMethod
	items         []order.Item
	deliveryFee   decimal.Decimal
	delivery      order.DeliveryDetails

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates checkout input. The payment method is
// case-insensitive and defaults to COD; an absent delivery fee defaults to
// order.DefaultDeliveryFee. All validation failures are reported together.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	ownerID kernel.UUID,
	paymentMethod string,
	lines []OrderLine,
	deliveryFee decimal.NullDecimal,
	address json.RawMessage,
	deliveryDate string,
	deliverySlot string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setItems(lines),
		cmd.setDeliveryFee(deliveryFee),
		cmd.setDelivery(address, deliveryDate, deliverySlot),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

func (c CreateOrderCommand) DeliveryFee() decimal.Decimal {
	return c.deliveryFee
}

func (c CreateOrderCommand) Delivery() order.DeliveryDetails {
	return c.delivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(raw string) error {
	pm, err := order.ParsePaymentMethod(raw)
	if err != nil {
		return err
	}

	c.paymentMethod = pm
	return nil
}

func (c *CreateOrderCommand) setItems(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(lines))
	for i, line := range lines {
		item, err := order.NewItem(line.Name, line.UnitPrice, line.Quantity)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryFee(fee decimal.NullDecimal) error {
	if !fee.Valid {
		c.deliveryFee = order.DefaultDeliveryFee
		return nil
	}
	if fee.Decimal.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee", fmt.Errorf("%s is negative", fee.Decimal))
	}

	c.deliveryFee = fee.Decimal.Round(2)
	return nil
}

func (c *CreateOrderCommand) setDelivery(address json.RawMessage, date, slot string) error {
	delivery, err := order.NewDeliveryDetails(address, date, slot)
	if err != nil {
		return err
	}

	c.delivery = delivery
	return nil
}
