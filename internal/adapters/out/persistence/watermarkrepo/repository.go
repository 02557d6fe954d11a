package watermarkrepo

import (
	"context"
	"errors"
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/pkg/errs"

	"gorm.io/gorm"
)

// advanceSQL inserts the watermark or moves it forward. The WHERE clause of the
// conflict branch makes an older clear a no-op, so the stored value only grows
// no matter how concurrent clears interleave.
const advanceSQL = `
	INSERT INTO notification_watermarks (user_id, cleared_at)
	VALUES (?, ?)
	ON CONFLICT (user_id) DO UPDATE
		SET cleared_at = excluded.cleared_at
		WHERE notification_watermarks.cleared_at < excluded.cleared_at
`

// GormWatermarkRepository implements ports.WatermarkRepository using GORM.
type GormWatermarkRepository struct {
	db *gorm.DB
}

func NewGormWatermarkRepository(db *gorm.DB) *GormWatermarkRepository {
	return &GormWatermarkRepository{db: db}
}

// Get returns the stored watermark, or the zero time.
func (r *GormWatermarkRepository) Get(ctx context.Context, userID kernel.UUID) (time.Time, error) {
	if err := userID.Validate(); err != nil {
		return time.Time{}, err
	}

	var dto WatermarkDTO
	err := r.db.WithContext(ctx).Take(&dto, "user_id = ?", userID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, errs.NewStorageFailureError("get notification watermark", err)
	}

	return dto.ClearedAt.UTC(), nil
}

// Advance moves the watermark forward to at. advanced is false when the stored
// watermark was already at or after at.
func (r *GormWatermarkRepository) Advance(ctx context.Context, userID kernel.UUID, at time.Time) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}
	if at.IsZero() {
		return false, errs.NewValueIsRequiredError("cleared_at")
	}

	result := r.db.WithContext(ctx).Exec(advanceSQL, userID.Bytes(), at.UTC().Truncate(time.Microsecond))
	if result.Error != nil {
		return false, errs.NewStorageFailureError("advance notification watermark", result.Error)
	}

	return result.RowsAffected > 0, nil
}
