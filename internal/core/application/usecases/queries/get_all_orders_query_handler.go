package queries

import (
	"context"

	"aquasphere/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler pages through all orders, newest first, with the
// owner of each.
type GetAllOrdersQueryHandler struct {
	orders orderReadModel
}

func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orderReadModel{db: db}}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) (GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	filter := orderFilter{status: query.Status()}
	page := query.Page()

	total, err := h.orders.count(ctx, filter)
	if err != nil {
		return GetAllOrdersQueryResponse{}, errs.NewStorageFailureError("count orders", err)
	}

	orders, err := h.orders.list(ctx, filter, page.Offset(), page.Limit())
	if err != nil {
		return GetAllOrdersQueryResponse{}, errs.NewStorageFailureError("list orders", err)
	}

	if err = h.orders.attachItems(ctx, orders); err != nil {
		return GetAllOrdersQueryResponse{}, errs.NewStorageFailureError("list order items", err)
	}

	return GetAllOrdersQueryResponse{
		Orders:     orders,
		Total:      total,
		Page:       page.Number(),
		Limit:      page.Limit(),
		TotalPages: page.TotalPages(total),
	}, nil
}
