package commands

import (
	"context"
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels a pending order outright and turns a
// cancel on a preparing order into a cancellation request for an admin.
//
// Example:
//
//	status, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrIllegalTransition) {
//	    // shipped or later: too late to cancel
//	}
//	if status == order.CancellationRequested {
//	    // waiting for an admin
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the status the order is in after the cancel.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	return applyTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.RequestCancellation(cmd.Actor(), h.now())
	})
}

// applyTransition locks the order, lets change mutate it and stores the new
// status with its history entries in the same transaction.
func applyTransition(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	change func(o *order.Order) error,
) (order.Status, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return "", err
	}

	if err = change(o); err != nil {
		return "", err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return "", err
	}

	if err = uow.HistoryRepository().Append(ctx, o.PullHistory()...); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return o.Status(), nil
}
