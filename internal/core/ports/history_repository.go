package ports

import (
	"context"
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"
)

// HistoryRepository is the append-only order status log.
type HistoryRepository interface {
	// Append stores entries in the order given. Entries are never updated or deleted.
	Append(ctx context.Context, entries ...order.HistoryEntry) error

	// ListByOrder returns every entry of one order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error)
}

// HistoryReader serves the notification feed outside of a unit of work.
type HistoryReader interface {
	// ListByUser returns one page of entries for orders owned by userID, newest first
	// (created_at, then sequence). Only entries created strictly after clearedAfter are
	// considered; a zero clearedAfter disables the filter. total counts every matching
	// entry, not only the returned page.
	ListByUser(
		ctx context.Context,
		userID kernel.UUID,
		clearedAfter time.Time,
		offset, limit int,
	) (entries []order.HistoryEntry, total int64, err error)
}
