package queries

import (
	"context"
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/notification"
	"aquasphere/internal/core/ports"
)

// WatermarkReader reads the stored notification watermark of a user.
type WatermarkReader interface {
	Get(ctx context.Context, userID kernel.UUID) (time.Time, error)
}

// GetNotificationsQueryHandler projects a user's order history into notifications.
type GetNotificationsQueryHandler struct {
	history    ports.HistoryReader
	watermarks WatermarkReader
}

func NewGetNotificationsQueryHandler(
	history ports.HistoryReader,
	watermarks WatermarkReader,
) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{
		history:    history,
		watermarks: watermarks,
	}
}

// Handle returns the requested page. A page past the end is empty but still
// carries the total.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) (GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	stored, err := h.watermarks.Get(ctx, query.UserID())
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}
	clearedAt := notification.EffectiveWatermark(query.ClearedAt(), stored)

	page := query.Page()
	entries, total, err := h.history.ListByUser(ctx, query.UserID(), clearedAt, page.Offset(), page.Limit())
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	views, err := notification.Project(entries)
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	return GetNotificationsQueryResponse{
		Items:      views,
		Total:      total,
		Page:       page.Number(),
		Limit:      page.Limit(),
		TotalPages: page.TotalPages(total),
		ClearedAt:  clearedAt,
	}, nil
}
