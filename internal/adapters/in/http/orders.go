package http

import (
	"net/http"

	"aquasphere/internal/core/application/usecases/commands"
	"aquasphere/internal/core/application/usecases/queries"
	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"
	"aquasphere/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, failure("Not logged in"))
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid request body"))
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, commands.OrderLine{
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		actor.UserID(),
		req.PaymentMethod,
		lines,
		req.DeliveryFee,
		req.DeliveryAddress,
		req.DeliveryDate,
		req.DeliveryTime,
	)
	if err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid order data: "+err.Error()))
	}

	total, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err, "Failed to create order")
	}

	metrics.OrdersCreatedTotal.WithLabelValues(cmd.PaymentMethod().String()).Inc()

	return c.JSON(http.StatusCreated, createOrderResponse{
		response:    response{Success: true, Message: "Order created successfully"},
		OrderID:     cmd.OrderID().String(),
		TotalAmount: total,
	})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, failure("Not logged in"))
	}

	query, err := queries.NewGetUserOrdersQuery(actor.UserID())
	if err != nil {
		return s.writeError(c, err, "Failed to retrieve orders")
	}

	orders, err := s.getUserOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err, "Failed to retrieve orders")
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}

	return c.JSON(http.StatusOK, ordersResponse{
		response: response{Success: true},
		Orders:   views,
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, failure("Not logged in"))
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		metrics.OrderTransitionsRejectedTotal.WithLabelValues(metrics.ReasonValidation).Inc()
		return c.JSON(http.StatusBadRequest, failure("Valid order id is required"))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		metrics.OrderTransitionsRejectedTotal.WithLabelValues(metrics.ReasonValidation).Inc()
		return c.JSON(http.StatusBadRequest, failure(err.Error()))
	}

	status, err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		metrics.OrderTransitionsRejectedTotal.WithLabelValues(rejectionReason(err)).Inc()
		return s.writeError(c, err, "Failed to cancel order")
	}

	metrics.OrderTransitionsTotal.WithLabelValues(actor.Role().String(), status.String()).Inc()

	message := "Order cancelled successfully"
	if status == order.CancellationRequested {
		message = "Cancellation requested. An admin will review it shortly."
	}

	return c.JSON(http.StatusOK, statusResponse{
		response: response{Success: true, Message: message},
		OrderID:  orderID.String(),
		Status:   status.String(),
	})
}

// ChangeOrderStatus handles PUT /api/v1/admin/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, failure("Not logged in"))
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		metrics.OrderTransitionsRejectedTotal.WithLabelValues(metrics.ReasonValidation).Inc()
		return c.JSON(http.StatusBadRequest, failure("Valid order id is required"))
	}

	var req changeStatusRequest
	if err = c.Bind(&req); err != nil {
		metrics.OrderTransitionsRejectedTotal.WithLabelValues(metrics.ReasonValidation).Inc()
		return c.JSON(http.StatusBadRequest, failure("Invalid request body"))
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actor, req.Status)
	if err != nil {
		metrics.OrderTransitionsRejectedTotal.WithLabelValues(metrics.ReasonValidation).Inc()
		return c.JSON(http.StatusBadRequest, failure(err.Error()))
	}

	status, err := s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		metrics.OrderTransitionsRejectedTotal.WithLabelValues(rejectionReason(err)).Inc()
		return s.writeError(c, err, "Failed to update order status")
	}

	metrics.OrderTransitionsTotal.WithLabelValues(actor.Role().String(), status.String()).Inc()

	return c.JSON(http.StatusOK, statusResponse{
		response: response{Success: true, Message: "Order status updated successfully"},
		OrderID:  orderID.String(),
		Status:   status.String(),
	})
}

// ListOrders handles GET /api/v1/admin/orders?status=&page=&limit=.
func (s *Server) ListOrders(c echo.Context) error {
	query, err := queries.NewGetAllOrdersQuery(c.QueryParam("status"), intParam(c, "page"), intParam(c, "limit"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid status filter"))
	}

	result, err := s.getAllOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err, "Failed to load orders")
	}

	views := make([]adminOrderView, 0, len(result.Orders))
	for _, o := range result.Orders {
		views = append(views, adminOrderView{
			UserID:    o.OwnerID.String(),
			orderView: newOrderView(o),
		})
	}

	return c.JSON(http.StatusOK, adminOrdersResponse{
		response: response{Success: true},
		Orders:   views,
		Pagination: pagination{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

func newOrderView(o queries.OrderView) orderView {
	items := make([]orderItemView, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemView{
			ProductName:  item.Name,
			ProductPrice: item.UnitPrice,
			Quantity:     item.Quantity,
			Subtotal:     item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	return orderView{
		ID:                o.ID.String(),
		Status:            o.Status.String(),
		PaymentMethod:     o.PaymentMethod.String(),
		PaymentMethodName: o.PaymentMethod.DisplayName(),
		DeliveryFee:       o.DeliveryFee,
		Subtotal:          o.Subtotal,
		TotalAmount:       o.Total,
		DeliveryAddress:   o.DeliveryAddress,
		DeliveryDate:      o.DeliveryDate,
		DeliveryTime:      o.DeliverySlot,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Items:             items,
	}
}
