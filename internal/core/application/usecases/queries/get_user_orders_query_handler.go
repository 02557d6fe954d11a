package queries

import (
	"context"

	"aquasphere/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads the order list straight from the tables.
//
// Example:
//
//	handler := NewGetUserOrdersQueryHandler(db)
//	query, _ := NewGetUserOrdersQuery(userID)
//
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("%s %s %s\n", o.ID, o.Status, o.Total.StringFixed(2))
//	}
type GetUserOrdersQueryHandler struct {
	orders orderReadModel
}

func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{orders: orderReadModel{db: db}}
}

// Handle returns the user's orders with their items, newest first. A user
// without orders gets an empty slice.
func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.list(ctx, orderFilter{ownerID: query.UserID()}, 0, 0)
	if err != nil {
		return nil, errs.NewStorageFailureError("list user orders", err)
	}

	if err = h.orders.attachItems(ctx, orders); err != nil {
		return nil, errs.NewStorageFailureError("list order items", err)
	}

	return orders, nil
}
