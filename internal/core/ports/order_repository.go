// Package ports defines the persistence contracts of the order lifecycle.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All methods run inside the transaction of the UnitOfWork that returned the repository.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and updated-at time of an existing order.
	// Items, owner and payment method never change after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id without locking it.
	// Returns errs.ErrObjectNotFound when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the transaction ends,
	// so concurrent transitions of the same order are applied one after another.
	//
	// Example:
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   if errors.Is(err, errs.ErrObjectNotFound) {
	//       return err
	//   }
	//   if err = o.ChangeStatus(actor, order.Shipped, now); err != nil {
	//       return err
	//   }
	//   err = uow.OrderRepository().Update(ctx, o)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
