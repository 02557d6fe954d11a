package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"aquasphere/internal/core/application/usecases/commands"
	"aquasphere/internal/core/application/usecases/queries"
	"aquasphere/internal/core/domain/model/notification"
	"aquasphere/internal/metrics"

	"github.com/labstack/echo/v4"
)

// GetNotifications handles GET /api/v1/notifications?page=&limit=&cleared_at=.
// Malformed page and limit values are clamped like missing ones.
func (s *Server) GetNotifications(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, failure("Not logged in"))
	}

	page := notification.NewPage(intParam(c, "page"), intParam(c, "limit"))

	var clearedAt time.Time
	if raw := c.QueryParam("cleared_at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, failure("cleared_at must be an RFC 3339 timestamp"))
		}
		clearedAt = parsed
	}

	query, err := queries.NewGetNotificationsQuery(actor.UserID(), clearedAt, page)
	if err != nil {
		return s.writeError(c, err, "Failed to load notifications")
	}

	started := time.Now()
	feed, err := s.getNotificationsHandler.Handle(c.Request().Context(), query)
	metrics.NotificationProjectionDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		return s.writeError(c, err, "Failed to load notifications")
	}

	items := make([]notificationView, 0, len(feed.Items))
	for _, view := range feed.Items {
		items = append(items, notificationView{
			OrderID:       view.OrderID.String(),
			Status:        view.Status.String(),
			PaymentMethod: view.PaymentMethod.String(),
			CreatedAt:     view.CreatedAt,
			Title:         view.Title,
			Description:   view.Description,
			Icon:          view.Icon,
			Category:      string(view.Category),
		})
	}

	resp := notificationsResponse{
		response:      response{Success: true},
		Notifications: items,
		Pagination: pagination{
			Total:      feed.Total,
			Page:       feed.Page,
			Limit:      feed.Limit,
			TotalPages: feed.TotalPages,
		},
	}
	if !feed.ClearedAt.IsZero() {
		resp.ClearedAt = &feed.ClearedAt
	}

	return c.JSON(http.StatusOK, resp)
}

// ClearNotifications handles POST /api/v1/notifications/clear. The body is
// optional; without cleared_at everything up to now is cleared.
func (s *Server) ClearNotifications(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, failure("Not logged in"))
	}

	var req clearNotificationsRequest
	if err := c.Bind(&req); err != nil && !errors.Is(err, io.EOF) {
		return c.JSON(http.StatusBadRequest, failure("Invalid request body"))
	}

	var at time.Time
	if req.ClearedAt != nil {
		at = *req.ClearedAt
	}

	cmd, err := commands.NewClearNotificationsCommand(actor.UserID(), at)
	if err != nil {
		return s.writeError(c, err, "Failed to clear notifications")
	}

	cleared, err := s.clearNotificationsHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err, "Failed to clear notifications")
	}

	metrics.NotificationClearsTotal.Inc()

	return c.JSON(http.StatusOK, clearNotificationsResponse{
		response:  response{Success: true, Message: "Notifications cleared"},
		ClearedAt: cleared,
	})
}

func intParam(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
