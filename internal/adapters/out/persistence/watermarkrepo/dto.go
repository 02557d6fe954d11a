// Package watermarkrepo stores the per-user time up to which notifications
// were cleared.
package watermarkrepo

import (
	"time"

	"github.com/google/uuid"
)

// WatermarkDTO is one row of notification_watermarks.
type WatermarkDTO struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClearedAt time.Time `gorm:"not null"`
}

func (WatermarkDTO) TableName() string {
	return "notification_watermarks"
}
