// Package queries contains read operations. Queries bypass the aggregates and
// return read models shaped for the caller.
package queries

import (
	"errors"
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/notification"
	"aquasphere/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery asks for one page of a user's notification feed.
//
// clearedAt is the clear time the client remembers. It may be zero; the server
// watermark is applied either way and the later of the two wins.
//
// Example:
//
//	query, err := NewGetNotificationsQuery(userID, time.Time{}, notification.NewPage(1, 20))
//	feed, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d\n", len(feed.Items), feed.Total)
type GetNotificationsQuery struct {
	userID    kernel.UUID
	clearedAt time.Time
	page      notification.Page

	guard guard.ConstructorGuard
}

func NewGetNotificationsQuery(
	userID kernel.UUID,
	clearedAt time.Time,
	page notification.Page,
) (GetNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}

	if page.Limit() == 0 {
		page = notification.NewPage(page.Number(), 0)
	}

	return GetNotificationsQuery{
		userID:    userID,
		clearedAt: clearedAt,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

func (q GetNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

func (q GetNotificationsQuery) ClearedAt() time.Time {
	return q.clearedAt
}

func (q GetNotificationsQuery) Page() notification.Page {
	return q.page
}

// GetNotificationsQueryResponse is one page of the feed. Total counts every
// notification after the watermark, not only this page.
type GetNotificationsQueryResponse struct {
	Items      []notification.View
	Total      int64
	Page       int
	Limit      int
	TotalPages int
	ClearedAt  time.Time
}
