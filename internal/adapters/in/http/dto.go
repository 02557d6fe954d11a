package http

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func failure(message string) response {
	return response{Success: false, Message: message}
}

type createOrderRequest struct {
	Items           []orderItemRequest  `json:"items"`
	PaymentMethod   string              `json:"payment_method"`
	DeliveryFee     decimal.NullDecimal `json:"delivery_fee"`
	DeliveryAddress json.RawMessage     `json:"delivery_address"`
	DeliveryDate    string              `json:"delivery_date"`
	DeliveryTime    string              `json:"delivery_time"`
}

type orderItemRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type createOrderResponse struct {
	response
	OrderID     string          `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type ordersResponse struct {
	response
	Orders []orderView `json:"orders"`
}

type orderView struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	PaymentMethod     string          `json:"payment_method"`
	PaymentMethodName string          `json:"payment_method_name"`
	DeliveryFee       decimal.Decimal `json:"delivery_fee"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	DeliveryAddress   json.RawMessage `json:"delivery_address,omitempty"`
	DeliveryDate      string          `json:"delivery_date,omitempty"`
	DeliveryTime      string          `json:"delivery_time,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Items             []orderItemView `json:"items"`
}

type adminOrdersResponse struct {
	response
	Orders     []adminOrderView `json:"orders"`
	Pagination pagination       `json:"pagination"`
}

type adminOrderView struct {
	UserID string `json:"user_id"`
	orderView
}

type orderItemView struct {
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

type statusResponse struct {
	response
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type notificationsResponse struct {
	response
	Notifications []notificationView `json:"notifications"`
	Pagination    pagination         `json:"pagination"`
	ClearedAt     *time.Time         `json:"cleared_at,omitempty"`
}

type notificationView struct {
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon"`
	Category      string    `json:"category"`
}

type pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type clearNotificationsRequest struct {
	ClearedAt *time.Time `json:"cleared_at"`
}

type clearNotificationsResponse struct {
	response
	ClearedAt time.Time `json:"cleared_at"`
}

type estimateDeliveryRequest struct {
	Latitude  *float64   `json:"latitude"`
	Longitude *float64   `json:"longitude"`
	OrderSize int        `json:"order_size"`
	OrderedAt *time.Time `json:"ordered_at"`
}

type estimateDeliveryResponse struct {
	response
	DistanceKm                 float64         `json:"distance_km"`
	DeliveryTimeMinutes        float64         `json:"delivery_time_minutes"`
	DeliveryTimeHours          float64         `json:"delivery_time_hours"`
	ShippingFee                decimal.Decimal `json:"shipping_fee"`
	DeliveryDateRange          string          `json:"delivery_date_range"`
	DeliveryStartDate          string          `json:"delivery_start_date"`
	DeliveryEndDate            string          `json:"delivery_end_date"`
	DeliveryStartDateFormatted string          `json:"delivery_start_date_formatted"`
	DeliveryEndDateFormatted   string          `json:"delivery_end_date_formatted"`
}
