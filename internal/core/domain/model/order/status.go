package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTarget is returned when a status string is not one of the known statuses.
var ErrInvalidTarget = errors.New("status is not a valid order status")

// Status is the lifecycle state of an order. Values are the lower-case literals
// used on the wire and in storage.
type Status string

const (
	Pending               Status = "pending"
	Preparing             Status = "preparing"
	Shipped               Status = "shipped"
	OutForDelivery        Status = "out_for_delivery"
	Delivered             Status = "delivered"
	Cancelled             Status = "cancelled"
	CancellationRequested Status = "cancellation_requested"
	Paid                  Status = "paid"
)

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		Pending,
		Preparing,
		Shipped,
		OutForDelivery,
		Delivered,
		Cancelled,
		CancellationRequested,
		Paid,
	}
}

func getValidStatuses() map[Status]struct{} {
	valid := make(map[Status]struct{}, len(AllStatuses()))
	for _, s := range AllStatuses() {
		valid[s] = struct{}{}
	}
	return valid
}

// NormalizeStatus folds case and trims whitespace without validating.
func NormalizeStatus(raw string) Status {
	return Status(strings.ToLower(strings.TrimSpace(raw)))
}

// ParseStatus accepts any letter case and surrounding whitespace.
func ParseStatus(raw string) (Status, error) {
	s := NormalizeStatus(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate reports ErrInvalidTarget for anything outside the enumeration.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTarget, string(s))
	}
	return nil
}

// IsTerminal reports whether customers can no longer act on the order.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

func (s Status) String() string {
	return string(s)
}
