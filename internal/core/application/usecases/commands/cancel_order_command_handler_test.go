package commands_test

import (
	"testing"

	"aquasphere/internal/core/application/usecases/commands"
	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	owner := kernel.NewUUID()
	customer, _ := order.NewCustomer(owner)

	tests := []struct {
		name string
		from order.Status
		want order.Status
	}{
		{name: "pending order is cancelled", from: order.Pending, want: order.Cancelled},
		{name: "preparing order awaits an admin", from: order.Preparing, want: order.CancellationRequested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := storedOrder(t, owner, tt.from)
			cmd, err := commands.NewCancelOrderCommand(o.ID(), customer)
			require.NoError(t, err)

			orders := new(MockOrderRepository)
			history := new(MockHistoryRepository)
			uow := new(MockOrderUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(orders).Once(),
				orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
				orders.On("Update", ctx, o).Return(nil).Once(),
				uow.On("HistoryRepository").Return(history).Once(),
				history.On("Append", ctx, historyWith(tt.want)).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			status, err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
			history.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_TooLate(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	customer, _ := order.NewCustomer(owner)
	o := storedOrder(t, owner, order.OutForDelivery)
	cmd, _ := commands.NewCancelOrderCommand(o.ID(), customer)

	orders := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrIllegalTransition)
	assert.Equal(t, order.OutForDelivery, o.Status())
	uow.AssertExpectations(t)
}

func TestNewCancelOrderCommand_RequiresActor(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), order.Actor{})
	require.ErrorIs(t, err, order.ErrActorIsNotConstructed)
}
