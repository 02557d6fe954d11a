package commands

import (
	"context"
	"time"

	"aquasphere/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies a validated status transition.
//
// The order row is locked for the rest of the transaction, so two concurrent
// requests for the same order are applied one after the other: the second
// sees the status the first committed.
//
// Errors:
//   - errs.ErrObjectNotFound: no such order, or a customer who does not own it
//   - order.ErrInvalidTarget: the requested status is not a known status
//   - order.ErrIllegalTransition: the actor may not make this move
//   - errs.ErrStorageFailure: nothing was written
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the status the order is in after the transition.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	return applyTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ChangeStatus(cmd.Actor(), cmd.Target(), h.now())
	})
}
