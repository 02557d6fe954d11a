// Package historyrepo persists the append-only order status history and serves
// the paginated reads behind the notification feed.
package historyrepo

import (
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// HistoryDTO is one row of order_status_history. ID is the insertion sequence and
// breaks ties between entries with the same created_at.
type HistoryDTO struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_history_user_created,priority:1"`
	Status        string    `gorm:"size:32;not null"`
	PaymentMethod string    `gorm:"size:16;not null"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime:false;index:idx_history_user_created,priority:2"`
}

func (HistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(entry order.HistoryEntry) HistoryDTO {
	return HistoryDTO{
		OrderID:       entry.OrderID().Bytes(),
		UserID:        entry.UserID().Bytes(),
		Status:        entry.Status().String(),
		PaymentMethod: entry.PaymentMethod().String(),
		CreatedAt:     entry.CreatedAt(),
	}
}

func toDomain(dto HistoryDTO) (order.HistoryEntry, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return order.HistoryEntry{}, err
	}

	return order.RestoreHistoryEntry(
		dto.ID,
		orderID,
		userID,
		order.Status(dto.Status),
		order.PaymentMethod(dto.PaymentMethod),
		dto.CreatedAt,
	)
}

func toDomainList(dtos []HistoryDTO) ([]order.HistoryEntry, error) {
	entries := make([]order.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
