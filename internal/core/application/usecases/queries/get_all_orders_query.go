package queries

import (
	"errors"

	"aquasphere/internal/core/domain/model/notification"
	"aquasphere/internal/core/domain/model/order"
	"aquasphere/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// DefaultAdminPageSize is the page size of the admin order list when none is given.
const DefaultAdminPageSize = 10

// GetAllOrdersQuery lists every customer's orders for the admin console,
// optionally narrowed to one status.
type GetAllOrdersQuery struct {
	status order.Status
	page   notification.Page

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery accepts an empty status for all orders. Any other value
// must name a known status in any letter case.
func NewGetAllOrdersQuery(status string, pageNumber, limit int) (GetAllOrdersQuery, error) {
	var filter order.Status
	if order.NormalizeStatus(status) != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return GetAllOrdersQuery{}, err
		}
		filter = parsed
	}

	if limit == 0 {
		limit = DefaultAdminPageSize
	}

	return GetAllOrdersQuery{
		status: filter,
		page:   notification.NewPage(pageNumber, limit),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Status is empty when the list is not filtered.
func (q GetAllOrdersQuery) Status() order.Status {
	return q.status
}

func (q GetAllOrdersQuery) Page() notification.Page {
	return q.page
}

type GetAllOrdersQueryResponse struct {
	Orders     []OrderView
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
