package ports

import (
	"context"
	"time"

	"aquasphere/internal/core/domain/model/kernel"
)

// WatermarkRepository stores, per user, the time up to which notifications were cleared.
type WatermarkRepository interface {
	// Get returns the stored watermark, or the zero time if the user never cleared.
	Get(ctx context.Context, userID kernel.UUID) (time.Time, error)

	// Advance moves the watermark to at if at is later than the stored value.
	// It is a single conditional upsert, so concurrent clears keep the latest time.
	// advanced reports whether the stored value changed.
	Advance(ctx context.Context, userID kernel.UUID, at time.Time) (advanced bool, err error)
}
