package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the echo instance with access logging, panic recovery,
// health and metrics endpoints and the API routes of s.
func NewRouter(s *Server, logger *slog.Logger, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(context.Background(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.Any("error", v.Error),
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	RegisterRoutes(e, s)
	return e
}

// RegisterRoutes mounts the API under /api/v1. Identity is attached per route
// so unknown paths still fall through to 404.
func RegisterRoutes(e *echo.Echo, s *Server) {
	api := e.Group("/api/v1")
	api.POST("/delivery/estimate", s.EstimateDelivery)

	api.POST("/orders", s.CreateOrder, Identity())
	api.GET("/orders", s.GetOrders, Identity())
	api.POST("/orders/:id/cancel", s.CancelOrder, Identity())
	api.GET("/notifications", s.GetNotifications, Identity())
	api.POST("/notifications/clear", s.ClearNotifications, Identity())

	api.GET("/admin/orders", s.ListOrders, Identity(), RequireAdmin())
	api.PUT("/admin/orders/:id/status", s.ChangeOrderStatus, Identity(), RequireAdmin())
}
