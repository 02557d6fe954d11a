package notification

import (
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"
)

// View is one rendered notification.
type View struct {
	Sequence      uint64
	OrderID       kernel.UUID
	Status        order.Status
	PaymentMethod order.PaymentMethod
	CreatedAt     time.Time
	Message
}

// Project maps history entries to views, keeping their order.
func Project(entries []order.HistoryEntry) ([]View, error) {
	views := make([]View, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, err
		}

		msg, err := MessageFor(entry.Status(), entry.PaymentMethod())
		if err != nil {
			return nil, err
		}

		views = append(views, View{
			Sequence:      entry.Sequence(),
			OrderID:       entry.OrderID(),
			Status:        entry.Status(),
			PaymentMethod: entry.PaymentMethod(),
			CreatedAt:     entry.CreatedAt(),
			Message:       msg,
		})
	}
	return views, nil
}

// EffectiveWatermark is the later of the two clear times. Entries created at or
// before it are hidden.
func EffectiveWatermark(client, stored time.Time) time.Time {
	if client.After(stored) {
		return client.UTC()
	}
	return stored.UTC()
}
