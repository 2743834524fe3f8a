package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Role classifies the caller of a tracking operation. Role resolution itself
// (sessions, tokens) belongs to the auth collaborator; the core only enforces
// which role may call which operation.
type Role string

const (
	RoleSeller    Role = "seller"
	RoleAdmin     Role = "admin"
	RoleBuyer     Role = "buyer"
	RoleAnonymous Role = "anonymous"
)

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	switch r {
	case RoleSeller, RoleAdmin, RoleBuyer, RoleAnonymous:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a known role", string(r)),
	)
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}

// Actor is the identity attached to an incoming call: who is calling and in
// which role. Anonymous actors carry a zero UUID.
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates an authenticated actor with the given identity and role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if role == RoleAnonymous {
		return Actor{}, errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("anonymous actors must be created via NewAnonymousActor"),
		)
	}
	return Actor{id: id, role: role}, nil
}

// NewAnonymousActor creates the unauthenticated actor used for public
// tracking lookups.
func NewAnonymousActor() Actor {
	return Actor{role: RoleAnonymous}
}

// ID returns the actor's identity. Zero for anonymous actors.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Validate checks that the actor was constructed through NewActor or
// NewAnonymousActor.
func (a Actor) Validate() error {
	if a.role == "" {
		return errs.NewValueIsRequiredError("actor must be created via NewActor or NewAnonymousActor")
	}
	return a.role.Validate()
}
