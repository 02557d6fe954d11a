package commands

import (
	"errors"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"
	"aquasphere/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks to move an order to another status on behalf of an actor.
//
// The requested status is only normalised here. It is validated after the order is
// loaded, so a caller who cannot see the order always gets a not-found error.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor
	target  order.Status

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	actor order.Actor,
	requestedStatus string,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		actor:   actor,
		target:  order.NormalizeStatus(requestedStatus),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Actor() order.Actor {
	return c.actor
}

func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}
