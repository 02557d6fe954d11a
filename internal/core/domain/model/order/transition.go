package order

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is the sentinel behind every TransitionError.
var ErrIllegalTransition = errors.New("transition is not allowed")

// TransitionError describes a rejected (from, to) pair for a role.
type TransitionError struct {
	Role Role
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s may not move an order from %s to %s", ErrIllegalTransition, e.Role, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// customerTransitions is the complete set of moves available to an order's owner.
// The key is the current status; the value is the only target allowed from it.
func customerTransitions() map[Status]Status {
	return map[Status]Status{
		Pending:   Cancelled,
		Preparing: CancellationRequested,
	}
}

// Authorize checks whether role may move an order from one status to another.
// Both statuses must already be valid.
//
// Admins may set any status from any status. Customers may only cancel: a pending
// order is cancelled immediately, a preparing order moves to cancellation_requested
// and waits for an admin.
func Authorize(role Role, from, to Status) error {
	switch role {
	case RoleAdmin:
		return nil
	case RoleCustomer:
		if target, ok := customerTransitions()[from]; ok && target == to {
			return nil
		}
	}

	return &TransitionError{Role: role, From: from, To: to}
}

// CancellationTarget returns the status a customer's cancel request leads to
// from the given status.
func CancellationTarget(from Status) (Status, error) {
	target, ok := customerTransitions()[from]
	if !ok {
		return "", &TransitionError{Role: RoleCustomer, From: from, To: Cancelled}
	}
	return target, nil
}
