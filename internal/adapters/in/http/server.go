package http

import (
	"context"
	"log/slog"
	"time"

	"aquasphere/internal/core/application/usecases/commands"
	"aquasphere/internal/core/application/usecases/queries"
	"aquasphere/internal/core/domain/model/order"
	"aquasphere/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (decimal.Decimal, error)
}

type CancelOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) (order.Status, error)
}

type ChangeOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (order.Status, error)
}

type ClearNotificationsHandler interface {
	Handle(ctx context.Context, cmd commands.ClearNotificationsCommand) (time.Time, error)
}

type GetUserOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetUserOrdersQuery) ([]queries.OrderView, error)
}

type GetAllOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetAllOrdersQuery) (queries.GetAllOrdersQueryResponse, error)
}

type GetNotificationsHandler interface {
	Handle(ctx context.Context, query queries.GetNotificationsQuery) (queries.GetNotificationsQueryResponse, error)
}

type EstimateDeliveryHandler interface {
	Handle(ctx context.Context, query queries.EstimateDeliveryQuery) (services.Estimate, error)
}

// Server handles HTTP requests by turning them into commands and queries.
type Server struct {
	// Command handlers
	createOrderHandler        CreateOrderHandler
	cancelOrderHandler        CancelOrderHandler
	changeOrderStatusHandler  ChangeOrderStatusHandler
	clearNotificationsHandler ClearNotificationsHandler

	// Query handlers
	getUserOrdersHandler    GetUserOrdersHandler
	getAllOrdersHandler     GetAllOrdersHandler
	getNotificationsHandler GetNotificationsHandler
	estimateDeliveryHandler EstimateDeliveryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	cancelOrderHandler CancelOrderHandler,
	changeOrderStatusHandler ChangeOrderStatusHandler,
	clearNotificationsHandler ClearNotificationsHandler,
	getUserOrdersHandler GetUserOrdersHandler,
	getAllOrdersHandler GetAllOrdersHandler,
	getNotificationsHandler GetNotificationsHandler,
	estimateDeliveryHandler EstimateDeliveryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		clearNotificationsHandler: clearNotificationsHandler,
		getUserOrdersHandler:      getUserOrdersHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getNotificationsHandler:   getNotificationsHandler,
		estimateDeliveryHandler:   estimateDeliveryHandler,
		logger:                    logger.With("component", "http"),
	}
}
