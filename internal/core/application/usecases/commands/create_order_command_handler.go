package commands

import (
	"context"
	"time"

	"aquasphere/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CreateOrderCommandHandler places new orders. The order row and its initial
// pending history entry are written in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	total, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order creation command and returns the total that was
// stored with the order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (decimal.Decimal, error) {
	if err := cmd.Validate(); err != nil {
		return decimal.Zero, err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OwnerID(),
		cmd.PaymentMethod(),
		cmd.Items(),
		cmd.DeliveryFee(),
		cmd.Delivery(),
		h.now(),
	)
	if err != nil {
		return decimal.Zero, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return decimal.Zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return decimal.Zero, err
	}

	if err = uow.HistoryRepository().Append(ctx, o.PullHistory()...); err != nil {
		return decimal.Zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return decimal.Zero, err
	}
	return o.Total(), nil
}
