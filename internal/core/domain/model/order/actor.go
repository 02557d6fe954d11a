package order

import (
	"errors"
	"fmt"
	"strings"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/pkg/errs"
	"aquasphere/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor, NewCustomer or NewAdmin")

// Role is the authority an actor holds over orders.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ParseRole accepts any letter case; an empty value means customer.
func ParseRole(raw string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	if r == "" {
		return RoleCustomer, nil
	}
	if r != RoleCustomer && r != RoleAdmin {
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", raw))
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

// Actor is the user requesting a transition.
type Actor struct {
	userID kernel.UUID
	role   Role
	guard  guard.ConstructorGuard
}

func NewActor(userID kernel.UUID, role Role) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	if role != RoleCustomer && role != RoleAdmin {
		return Actor{}, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", role))
	}

	return Actor{userID: userID, role: role, guard: guard.NewConstructorGuard()}, nil
}

func NewCustomer(userID kernel.UUID) (Actor, error) {
	return NewActor(userID, RoleCustomer)
}

func NewAdmin(userID kernel.UUID) (Actor, error) {
	return NewActor(userID, RoleAdmin)
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) UserID() kernel.UUID {
	return a.userID
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Owns reports whether the actor placed the given order.
func (a Actor) Owns(o *Order) bool {
	return o != nil && a.userID.IsEqual(o.OwnerID())
}

func (a Actor) String() string {
	return fmt.Sprintf("%s(%s)", a.role, a.userID)
}
