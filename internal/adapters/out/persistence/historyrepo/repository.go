package historyrepo

import (
	"context"
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/core/domain/model/order"
	"aquasphere/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHistoryRepository implements ports.HistoryRepository and ports.HistoryReader.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append inserts entries in one statement, keeping their order in the sequence.
func (r *GormHistoryRepository) Append(ctx context.Context, entries ...order.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]HistoryDTO, 0, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(entry))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return errs.NewStorageFailureError("append order history", err)
	}
	return nil
}

// ListByOrder returns the full history of one order, oldest first.
func (r *GormHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.HistoryEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at").Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageFailureError("list order history", err)
	}

	return toDomainList(dtos)
}

// ListByUser returns one page of a user's history, newest first.
// The owner is denormalised onto every entry, so no join with orders is needed.
func (r *GormHistoryRepository) ListByUser(
	ctx context.Context,
	userID kernel.UUID,
	clearedAfter time.Time,
	offset, limit int,
) ([]order.HistoryEntry, int64, error) {
	if err := userID.Validate(); err != nil {
		return nil, 0, err
	}

	visible := func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID.Bytes())
		if !clearedAfter.IsZero() {
			db = db.Where("created_at > ?", clearedAfter.UTC().Truncate(time.Microsecond))
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&HistoryDTO{}).Scopes(visible).Count(&total).Error; err != nil {
		return nil, 0, errs.NewStorageFailureError("count user history", err)
	}

	if total == 0 || int64(offset) >= total {
		return []order.HistoryEntry{}, total, nil
	}

	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Scopes(visible).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, 0, errs.NewStorageFailureError("list user history", err)
	}

	entries, err := toDomainList(dtos)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
