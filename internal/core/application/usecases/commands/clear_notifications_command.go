package commands

import (
	"errors"
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/pkg/guard"
)

var ErrClearNotificationsCommandIsNotConstructed = errors.New(
	"ClearNotificationsCommand must be created via NewClearNotificationsCommand constructor",
)

// ClearNotificationsCommand hides every notification created up to clearedAt.
// A zero clearedAt means "now".
type ClearNotificationsCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	clearedAt time.Time

	guard guard.ConstructorGuard
}

func NewClearNotificationsCommand(userID kernel.UUID, clearedAt time.Time) (ClearNotificationsCommand, error) {
	if err := userID.Validate(); err != nil {
		return ClearNotificationsCommand{}, err
	}

	return ClearNotificationsCommand{
		userID:    userID,
		clearedAt: clearedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ClearNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrClearNotificationsCommandIsNotConstructed)
}

func (c ClearNotificationsCommand) UserID() kernel.UUID {
	return c.userID
}

func (c ClearNotificationsCommand) ClearedAt() time.Time {
	return c.clearedAt
}
