package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand represents a request to move a fulfillment unit to a
// new lifecycle status, optionally annotated with the package's current
// location and a free-text description.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	unitID      kernel.UUID
	target      fulfillment.Status
	location    string
	description string
	actor       kernel.Actor

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand creates a command to change a unit's status. The
// target must be a valid status; whether the edge is legal is decided by the
// aggregate.
func NewUpdateStatusCommand(
	unitID kernel.UUID,
	target fulfillment.Status,
	location string,
	description string,
	actor kernel.Actor,
) (UpdateStatusCommand, error) {
	cmd := UpdateStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUnitID(unitID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	cmd.location = location
	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// UnitID returns the unit to move.
func (c UpdateStatusCommand) UnitID() kernel.UUID {
	return c.unitID
}

// Target returns the requested status.
func (c UpdateStatusCommand) Target() fulfillment.Status {
	return c.target
}

// Location returns the optional free-text package location.
func (c UpdateStatusCommand) Location() string {
	return c.location
}

// Description returns the optional free-text description.
func (c UpdateStatusCommand) Description() string {
	return c.description
}

// Actor returns the caller's identity.
func (c UpdateStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *UpdateStatusCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}

	c.unitID = unitID
	return nil
}

func (c *UpdateStatusCommand) setTarget(target fulfillment.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdateStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
