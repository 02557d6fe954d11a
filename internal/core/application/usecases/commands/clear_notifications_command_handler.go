package commands

import (
	"context"
	"time"
)

// ClearNotificationsCommandHandler advances the caller's notification watermark.
// The watermark never moves backwards; a time in the future is clamped to now.
type ClearNotificationsCommandHandler struct {
	uowFactory WatermarkUoWFactory
	now        func() time.Time
}

func NewClearNotificationsCommandHandler(uowFactory WatermarkUoWFactory) ClearNotificationsCommandHandler {
	return ClearNotificationsCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the watermark in effect after the clear, which is later than the
// requested time if another device already cleared further.
func (h ClearNotificationsCommandHandler) Handle(ctx context.Context, cmd ClearNotificationsCommand) (time.Time, error) {
	if err := cmd.Validate(); err != nil {
		return time.Time{}, err
	}

	now := h.now().UTC()
	at := cmd.ClearedAt().UTC()
	if at.IsZero() || at.After(now) {
		at = now
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return time.Time{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	watermarks := uow.WatermarkRepository()

	if _, err := watermarks.Advance(ctx, cmd.UserID(), at); err != nil {
		return time.Time{}, err
	}

	stored, err := watermarks.Get(ctx, cmd.UserID())
	if err != nil {
		return time.Time{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return time.Time{}, err
	}

	return stored, nil
}
