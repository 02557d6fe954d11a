package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "aquasphere/internal/adapters/in/http"
	"aquasphere/internal/core/application/usecases/commands"
	"aquasphere/internal/core/application/usecases/queries"
	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/notification"
	"aquasphere/internal/core/domain/model/order"
	"aquasphere/internal/core/domain/services"
	"aquasphere/internal/metrics"
	"aquasphere/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (decimal.Decimal, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockCancelOrderHandler struct{ mock.Mock }

func (m *MockCancelOrderHandler) Handle(ctx context.Context, cmd commands.CancelOrderCommand) (order.Status, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Status), args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.ChangeOrderStatusCommand,
) (order.Status, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Status), args.Error(1)
}

type MockClearNotificationsHandler struct{ mock.Mock }

func (m *MockClearNotificationsHandler) Handle(
	ctx context.Context,
	cmd commands.ClearNotificationsCommand,
) (time.Time, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(time.Time), args.Error(1)
}

type MockGetUserOrdersHandler struct{ mock.Mock }

func (m *MockGetUserOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetUserOrdersQuery,
) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]queries.OrderView)
	return orders, args.Error(1)
}

type MockGetAllOrdersHandler struct{ mock.Mock }

func (m *MockGetAllOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetAllOrdersQuery,
) (queries.GetAllOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetAllOrdersQueryResponse), args.Error(1)
}

type MockGetNotificationsHandler struct{ mock.Mock }

func (m *MockGetNotificationsHandler) Handle(
	ctx context.Context,
	query queries.GetNotificationsQuery,
) (queries.GetNotificationsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetNotificationsQueryResponse), args.Error(1)
}

type testServer struct {
	createOrder        *MockCreateOrderHandler
	cancelOrder        *MockCancelOrderHandler
	changeOrderStatus  *MockChangeOrderStatusHandler
	clearNotifications *MockClearNotificationsHandler
	getUserOrders      *MockGetUserOrdersHandler
	getAllOrders       *MockGetAllOrdersHandler
	getNotifications   *MockGetNotificationsHandler
	router             *echo.Echo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	estimator, err := services.NewDeliveryEstimator(services.DefaultHub())
	require.NoError(t, err)

	ts := &testServer{
		createOrder:        new(MockCreateOrderHandler),
		cancelOrder:        new(MockCancelOrderHandler),
		changeOrderStatus:  new(MockChangeOrderStatusHandler),
		clearNotifications: new(MockClearNotificationsHandler),
		getUserOrders:      new(MockGetUserOrdersHandler),
		getAllOrders:       new(MockGetAllOrdersHandler),
		getNotifications:   new(MockGetNotificationsHandler),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpin.NewServer(
		ts.createOrder,
		ts.cancelOrder,
		ts.changeOrderStatus,
		ts.clearNotifications,
		ts.getUserOrders,
		ts.getAllOrders,
		ts.getNotifications,
		queries.NewEstimateDeliveryQueryHandler(estimator),
		logger,
	)
	ts.router = httpin.NewRouter(server, logger, prometheus.NewRegistry())
	return ts
}

func (ts *testServer) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func customerHeaders(userID kernel.UUID) map[string]string {
	return map[string]string{httpin.HeaderUserID: userID.String()}
}

func adminHeaders(userID kernel.UUID) map[string]string {
	return map[string]string{httpin.HeaderUserID: userID.String(), httpin.HeaderUserRole: "Admin"}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestIdentity(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name    string
		target  string
		method  string
		headers map[string]string
		want    int
	}{
		{name: "missing user", method: http.MethodGet, target: "/api/v1/orders", want: http.StatusUnauthorized},
		{
			name: "malformed user", method: http.MethodGet, target: "/api/v1/notifications",
			headers: map[string]string{httpin.HeaderUserID: "42"}, want: http.StatusUnauthorized,
		},
		{
			name: "unknown role", method: http.MethodGet, target: "/api/v1/orders",
			headers: map[string]string{httpin.HeaderUserID: kernel.NewUUID().String(), httpin.HeaderUserRole: "courier"},
			want:    http.StatusUnauthorized,
		},
		{
			name: "customer on admin route", method: http.MethodPut,
			target:  "/api/v1/admin/orders/" + kernel.NewUUID().String() + "/status",
			headers: customerHeaders(kernel.NewUUID()), want: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(tt.method, tt.target, "", tt.headers)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, false, decode(t, rec)["success"])
		})
	}
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	ts := newTestServer(t)

	for _, target := range []string{"/api/v1/nope", "/api/v1/orders/extra/path", "/api/v1/admin/nope"} {
		t.Run(target, func(t *testing.T) {
			rec := ts.do(http.MethodGet, target, "", nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestChangeOrderStatus(t *testing.T) {
	orderID := kernel.NewUUID()
	target := "/api/v1/admin/orders/" + orderID.String() + "/status"

	t.Run("should pass the normalised status and return the new one", func(t *testing.T) {
		ts := newTestServer(t)
		ts.changeOrderStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeOrderStatusCommand) bool {
			return cmd.OrderID().IsEqual(orderID) && cmd.Target() == order.OutForDelivery && cmd.Actor().IsAdmin()
		})).Return(order.OutForDelivery, nil).Once()

		rec := ts.do(http.MethodPut, target, `{"status":" OUT_FOR_DELIVERY "}`, adminHeaders(kernel.NewUUID()))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "out_for_delivery", body["status"])
		ts.changeOrderStatus.AssertExpectations(t)
	})

	errorCases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "illegal transition",
			err:        &order.TransitionError{Role: order.RoleAdmin, From: order.Delivered, To: order.Pending},
			wantStatus: http.StatusConflict,
		},
		{name: "not found", err: errs.NewObjectNotFoundError("order", orderID.String()), wantStatus: http.StatusNotFound},
		{name: "invalid target", err: fmt.Errorf("%w: refunded", order.ErrInvalidTarget), wantStatus: http.StatusBadRequest},
		{
			name:        "storage failure",
			err:         errs.NewStorageFailureError("update order", errs.NewObjectNotFoundError("row", 1)),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to update order status",
		},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.changeOrderStatus.On("Handle", mock.Anything, mock.Anything).Return(order.Status(""), tc.err).Once()

			rec := ts.do(http.MethodPut, target, `{"status":"pending"}`, adminHeaders(kernel.NewUUID()))

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, body["message"])
			}
		})
	}

	t.Run("should reject a malformed order id", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPut, "/api/v1/admin/orders/17/status", `{"status":"shipped"}`, adminHeaders(kernel.NewUUID()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		ts.changeOrderStatus.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestTransitionValidationRejectionsAreCounted(t *testing.T) {
	ts := newTestServer(t)
	rejected := metrics.OrderTransitionsRejectedTotal.WithLabelValues(metrics.ReasonValidation)
	before := testutil.ToFloat64(rejected)

	requests := []struct {
		method string
		target string
		body   string
		header map[string]string
	}{
		{http.MethodPut, "/api/v1/admin/orders/17/status", `{"status":"shipped"}`, adminHeaders(kernel.NewUUID())},
		{http.MethodPut, "/api/v1/admin/orders/" + kernel.NewUUID().String() + "/status", `{"status":`, adminHeaders(kernel.NewUUID())},
		{http.MethodPost, "/api/v1/orders/17/cancel", "", customerHeaders(kernel.NewUUID())},
	}
	for _, r := range requests {
		rec := ts.do(r.method, r.target, r.body, r.header)
		require.Equal(t, http.StatusBadRequest, rec.Code, r.target)
	}

	assert.InDelta(t, before+3, testutil.ToFloat64(rejected), 0)
	ts.changeOrderStatus.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	ts.cancelOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCancelOrder(t *testing.T) {
	ts := newTestServer(t)
	userID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	ts.cancelOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelOrderCommand) bool {
		return cmd.OrderID().IsEqual(orderID) && cmd.Actor().UserID().IsEqual(userID)
	})).Return(order.CancellationRequested, nil).Once()

	rec := ts.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/cancel", "", customerHeaders(userID))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "cancellation_requested", body["status"])
	assert.Contains(t, body["message"], "Cancellation requested")
}

func TestCreateOrder(t *testing.T) {
	t.Run("should create the order for the caller", func(t *testing.T) {
		ts := newTestServer(t)
		userID := kernel.NewUUID()
		ts.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			return cmd.OwnerID().IsEqual(userID) && cmd.PaymentMethod() == order.GCash && len(cmd.Items()) == 1
		})).Return(decimal.RequireFromString("132.00"), nil).Once()

		rec := ts.do(http.MethodPost, "/api/v1/orders", `{
			"items": [{"name": "Slim gallon refill", "price": 25.50, "quantity": 4}],
			"payment_method": "gcash",
			"delivery_fee": 30,
			"delivery_address": {"city": "Santo Tomas"},
			"delivery_date": "2026-10-17",
			"delivery_time": "morning"
		}`, customerHeaders(userID))

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "132", body["total_amount"])
		_, err := kernel.UUIDFromString(body["order_id"].(string))
		assert.NoError(t, err)
		ts.createOrder.AssertExpectations(t)
	})

	t.Run("should answer with the total the handler stored", func(t *testing.T) {
		ts := newTestServer(t)
		ts.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			return cmd.DeliveryFee().Equal(decimal.RequireFromString("50.01"))
		})).Return(decimal.RequireFromString("75.01"), nil).Once()

		rec := ts.do(http.MethodPost, "/api/v1/orders", `{
			"items": [{"name": "Round gallon refill", "price": 25.00, "quantity": 1}],
			"delivery_fee": 50.005,
			"delivery_address": {"city": "Santo Tomas"}
		}`, customerHeaders(kernel.NewUUID()))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "75.01", decode(t, rec)["total_amount"])
		ts.createOrder.AssertExpectations(t)
	})

	t.Run("should reject an order without items", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/v1/orders",
			`{"items": [], "delivery_address": {"city": "Santo Tomas"}}`, customerHeaders(kernel.NewUUID()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		ts.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestGetOrders(t *testing.T) {
	ts := newTestServer(t)
	userID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	ts.getUserOrders.On("Handle", mock.Anything, mock.Anything).Return([]queries.OrderView{{
		ID:            orderID,
		Status:        order.Preparing,
		PaymentMethod: order.CashOnDelivery,
		DeliveryFee:   decimal.NewFromInt(50),
		Subtotal:      decimal.NewFromInt(100),
		Total:         decimal.NewFromInt(150),
		Items: []queries.OrderItemView{
			{Name: "Slim gallon refill", UnitPrice: decimal.NewFromInt(25), Quantity: 4},
		},
	}}, nil).Once()

	rec := ts.do(http.MethodGet, "/api/v1/orders", "", customerHeaders(userID))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	orders := body["orders"].([]any)
	require.Len(t, orders, 1)
	first := orders[0].(map[string]any)
	assert.Equal(t, orderID.String(), first["id"])
	assert.Equal(t, "Cash on Delivery", first["payment_method_name"])
	item := first["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "100", item["subtotal"])
}

func TestListOrders(t *testing.T) {
	t.Run("should page through all orders with their owners", func(t *testing.T) {
		ts := newTestServer(t)
		ownerID := kernel.NewUUID()
		orderID := kernel.NewUUID()
		ts.getAllOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetAllOrdersQuery) bool {
			return q.Status() == order.Shipped && q.Page().Number() == 2 && q.Page().Limit() == 5
		})).Return(queries.GetAllOrdersQueryResponse{
			Orders: []queries.OrderView{{
				ID:            orderID,
				OwnerID:       ownerID,
				Status:        order.Shipped,
				PaymentMethod: order.GCash,
				Total:         decimal.NewFromInt(110),
				Items:         []queries.OrderItemView{{Name: "Round gallon refill", UnitPrice: decimal.NewFromInt(30), Quantity: 2}},
			}},
			Total:      6,
			Page:       2,
			Limit:      5,
			TotalPages: 2,
		}, nil).Once()

		rec := ts.do(http.MethodGet, "/api/v1/admin/orders?status=SHIPPED&page=2&limit=5", "", adminHeaders(kernel.NewUUID()))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		orders := body["orders"].([]any)
		require.Len(t, orders, 1)
		first := orders[0].(map[string]any)
		assert.Equal(t, orderID.String(), first["id"])
		assert.Equal(t, ownerID.String(), first["user_id"])
		assert.Equal(t, "110", first["total_amount"])
		paging := body["pagination"].(map[string]any)
		assert.InDelta(t, 6, paging["total"], 0)
		assert.InDelta(t, 2, paging["total_pages"], 0)
		ts.getAllOrders.AssertExpectations(t)
	})

	t.Run("should reject an unknown status filter", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/api/v1/admin/orders?status=lost", "", adminHeaders(kernel.NewUUID()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		ts.getAllOrders.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should be closed to customers", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/api/v1/admin/orders", "", customerHeaders(kernel.NewUUID()))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetNotifications(t *testing.T) {
	t.Run("should clamp paging and render views", func(t *testing.T) {
		ts := newTestServer(t)
		userID := kernel.NewUUID()
		orderID := kernel.NewUUID()
		created := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

		ts.getNotifications.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetNotificationsQuery) bool {
			return q.UserID().IsEqual(userID) && q.Page().Number() == 1 && q.Page().Limit() == notification.MaxPageSize
		})).Return(queries.GetNotificationsQueryResponse{
			Items: []notification.View{{
				OrderID:       orderID,
				Status:        order.Shipped,
				PaymentMethod: order.Card,
				CreatedAt:     created,
				Message:       notification.Message{Title: "Order Shipped", Icon: "truck", Category: notification.CategoryDelivery},
			}},
			Total:      1,
			Page:       1,
			Limit:      notification.MaxPageSize,
			TotalPages: 1,
		}, nil).Once()

		rec := ts.do(http.MethodGet, "/api/v1/notifications?page=abc&limit=500", "", customerHeaders(userID))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		items := body["notifications"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, "shipped", items[0].(map[string]any)["status"])
		assert.Equal(t, "Order Shipped", items[0].(map[string]any)["title"])
		paging := body["pagination"].(map[string]any)
		assert.InDelta(t, 1, paging["total"], 0)
		assert.InDelta(t, 1, paging["total_pages"], 0)
		assert.NotContains(t, body, "cleared_at")
		ts.getNotifications.AssertExpectations(t)
	})

	t.Run("should pass the client watermark", func(t *testing.T) {
		ts := newTestServer(t)
		clearedAt := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
		ts.getNotifications.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetNotificationsQuery) bool {
			return q.ClearedAt().Equal(clearedAt)
		})).Return(queries.GetNotificationsQueryResponse{Page: 1, Limit: 50, TotalPages: 1, ClearedAt: clearedAt}, nil).Once()

		rec := ts.do(http.MethodGet, "/api/v1/notifications?cleared_at=2026-10-16T16:00:00%2B08:00", "",
			customerHeaders(kernel.NewUUID()))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2026-10-16T08:00:00Z", decode(t, rec)["cleared_at"])
	})

	t.Run("should reject a malformed watermark", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/api/v1/notifications?cleared_at=yesterday", "", customerHeaders(kernel.NewUUID()))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestClearNotifications(t *testing.T) {
	ts := newTestServer(t)
	userID := kernel.NewUUID()
	cleared := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	ts.clearNotifications.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ClearNotificationsCommand) bool {
		return cmd.UserID().IsEqual(userID) && cmd.ClearedAt().IsZero()
	})).Return(cleared, nil).Once()

	rec := ts.do(http.MethodPost, "/api/v1/notifications/clear", "", customerHeaders(userID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-10-16T09:00:00Z", decode(t, rec)["cleared_at"])
}

func TestEstimateDelivery(t *testing.T) {
	ts := newTestServer(t)

	t.Run("should quote a delivery from the hub", func(t *testing.T) {
		rec := ts.do(http.MethodPost, "/api/v1/delivery/estimate",
			`{"latitude": 14.0703, "longitude": 121.3253, "order_size": 1, "ordered_at": "2026-10-16T09:00:00+08:00"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "60", body["shipping_fee"])
		assert.Equal(t, "Oct 16 - Oct 17", body["delivery_date_range"])
		assert.Equal(t, "2026-10-16T09:00:00", body["delivery_start_date"])
	})

	t.Run("should require coordinates", func(t *testing.T) {
		rec := ts.do(http.MethodPost, "/api/v1/delivery/estimate", `{"order_size": 2}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject coordinates out of range", func(t *testing.T) {
		rec := ts.do(http.MethodPost, "/api/v1/delivery/estimate", `{"latitude": 95, "longitude": 121}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
