package order

import (
	"errors"
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/pkg/errs"
	"aquasphere/internal/pkg/guard"
)

var ErrHistoryEntryIsNotConstructed = errors.New(
	"HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry constructor",
)

// HistoryEntry records one status an order entered. Entries are immutable and
// append-only; Sequence is assigned by storage and breaks timestamp ties.
type HistoryEntry struct {
	sequence      uint64
	orderID       kernel.UUID
	userID        kernel.UUID
	status        Status
	paymentMethod PaymentMethod
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewHistoryEntry builds an entry that has not been stored yet (Sequence is 0).
func NewHistoryEntry(
	orderID kernel.UUID,
	userID kernel.UUID,
	status Status,
	paymentMethod PaymentMethod,
	createdAt time.Time,
) (HistoryEntry, error) {
	if err := errors.Join(
		orderID.Validate(),
		userID.Validate(),
		status.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return HistoryEntry{}, err
	}
	if createdAt.IsZero() {
		return HistoryEntry{}, errs.NewValueIsRequiredError("createdAt")
	}

	return HistoryEntry{
		orderID:       orderID,
		userID:        userID,
		status:        status,
		paymentMethod: paymentMethod,
		createdAt:     normalizeTime(createdAt),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreHistoryEntry rebuilds a stored entry.
func RestoreHistoryEntry(
	sequence uint64,
	orderID kernel.UUID,
	userID kernel.UUID,
	status Status,
	paymentMethod PaymentMethod,
	createdAt time.Time,
) (HistoryEntry, error) {
	entry, err := NewHistoryEntry(orderID, userID, status, paymentMethod, createdAt)
	if err != nil {
		return HistoryEntry{}, err
	}
	entry.sequence = sequence
	return entry, nil
}

func (h HistoryEntry) Validate() error {
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

func (h HistoryEntry) Sequence() uint64 {
	return h.sequence
}

func (h HistoryEntry) OrderID() kernel.UUID {
	return h.orderID
}

func (h HistoryEntry) UserID() kernel.UUID {
	return h.userID
}

func (h HistoryEntry) Status() Status {
	return h.status
}

func (h HistoryEntry) PaymentMethod() PaymentMethod {
	return h.paymentMethod
}

func (h HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}

// normalizeTime keeps timestamps comparable across drivers: UTC at microsecond
// precision, which is what PostgreSQL stores.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
