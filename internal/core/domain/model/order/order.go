package order

import (
	"errors"
	"fmt"
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// DefaultDeliveryFee applies when checkout does not quote a fee.
	DefaultDeliveryFee = decimal.NewFromInt(50)
)

// Order is a customer's purchase and the aggregate root of the lifecycle.
//
// Order follows these invariants:
//   - id, owner and payment method never change after creation
//   - status is always one of AllStatuses and changes only through ChangeStatus
//     or RequestCancellation
//   - every status it enters (including the initial pending) produces exactly one
//     HistoryEntry, collected by PullHistory and persisted in the same transaction
//   - updatedAt never moves backwards
type Order struct {
	id            kernel.UUID
	ownerID       kernel.UUID
	status        Status
	paymentMethod PaymentMethod
	items         []Item
	deliveryFee   decimal.Decimal
	delivery      DeliveryDetails
	createdAt     time.Time
	updatedAt     time.Time

	// history holds entries not yet handed to the history store.
	history []HistoryEntry

	isConstructed bool
}

// NewOrder places an order in pending status and records the pending history entry.
//
// Example:
//
//	item, _ := order.NewItem("Slim gallon refill", decimal.NewFromInt(25), 4)
//	details, _ := order.NewDeliveryDetails(addressJSON, "2026-10-17", "AM")
//	o, err := order.NewOrder(kernel.NewUUID(), ownerID, order.GCash,
//	    []order.Item{item}, order.DefaultDeliveryFee, details, time.Now())
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	paymentMethod PaymentMethod,
	items []Item,
	deliveryFee decimal.Decimal,
	delivery DeliveryDetails,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setPaymentMethod(paymentMethod),
		o.setItems(items),
		o.setDeliveryFee(deliveryFee),
		o.setTimestamps(placedAt, placedAt),
		o.setDelivery(delivery),
	); err != nil {
		return nil, err
	}

	if err := o.record(Pending, o.createdAt); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a stored order. It records no history.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	status Status,
	paymentMethod PaymentMethod,
	items []Item,
	deliveryFee decimal.Decimal,
	delivery DeliveryDetails,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setStatus(status),
		o.setPaymentMethod(paymentMethod),
		o.setRestoredItems(items),
		o.setDeliveryFee(deliveryFee),
		o.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}
	o.delivery = delivery

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) DeliveryFee() decimal.Decimal {
	return o.deliveryFee
}

func (o *Order) Delivery() DeliveryDetails {
	return o.delivery
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Subtotal is the sum of all line subtotals.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}

// Total is the subtotal plus the delivery fee.
func (o *Order) Total() decimal.Decimal {
	return o.Subtotal().Add(o.deliveryFee)
}

// ChangeStatus moves the order to target on behalf of actor.
//
// Errors:
//   - errs.ErrObjectNotFound when a customer acts on an order they do not own
//   - ErrInvalidTarget when target is not a known status
//   - ErrIllegalTransition (*TransitionError) when the actor's role forbids the move
//
// On success one HistoryEntry stamped max(at, UpdatedAt()) is queued for PullHistory.
func (o *Order) ChangeStatus(actor Actor, target Status, at time.Time) error {
	if err := o.checkAccess(actor); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if err := Authorize(actor.Role(), o.status, target); err != nil {
		return err
	}

	return o.record(target, at)
}

// RequestCancellation cancels on the customer's behalf: pending orders are
// cancelled, preparing orders move to cancellation_requested. Admins cancel
// outright from any status.
func (o *Order) RequestCancellation(actor Actor, at time.Time) error {
	if err := o.checkAccess(actor); err != nil {
		return err
	}

	if actor.IsAdmin() {
		return o.record(Cancelled, at)
	}

	target, err := CancellationTarget(o.status)
	if err != nil {
		return err
	}
	return o.record(target, at)
}

// PullHistory returns the entries recorded since the last call and forgets them.
func (o *Order) PullHistory() []HistoryEntry {
	pulled := o.history
	o.history = nil
	return pulled
}

func (o *Order) checkAccess(actor Actor) error {
	if err := errors.Join(o.Validate(), actor.Validate()); err != nil {
		return err
	}
	if !actor.IsAdmin() && !actor.Owns(o) {
		return errs.NewObjectNotFoundError("order", o.id.String())
	}
	return nil
}

func (o *Order) record(status Status, at time.Time) error {
	at = normalizeTime(at)
	if at.Before(o.updatedAt) {
		at = o.updatedAt
	}

	entry, err := NewHistoryEntry(o.id, o.ownerID, status, o.paymentMethod, at)
	if err != nil {
		return err
	}

	o.status = status
	o.updatedAt = at
	o.history = append(o.history, entry)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	return o.setRestoredItems(items)
}

// setRestoredItems allows legacy orders stored without lines.
func (o *Order) setRestoredItems(items []Item) error {
	for i, item := range items {
		if item.Name() == "" || item.Quantity() <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("line %d was not built with NewItem", i))
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setDeliveryFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee", fmt.Errorf("%s is negative", fee))
	}
	o.deliveryFee = fee.Round(2)
	return nil
}

func (o *Order) setDelivery(delivery DeliveryDetails) error {
	if len(delivery.address) == 0 {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	o.createdAt = normalizeTime(createdAt)
	o.updatedAt = normalizeTime(updatedAt)
	if o.updatedAt.Before(o.createdAt) {
		o.updatedAt = o.createdAt
	}
	return nil
}
