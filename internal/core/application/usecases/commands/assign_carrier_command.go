package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignCarrierCommandIsNotConstructed = errors.New(
	"AssignCarrierCommand must be created via NewAssignCarrierCommand constructor",
)

// AssignCarrierCommand represents a seller handing a fulfillment unit to a
// shipping company. The carrier tracking number is the carrier's own
// reference and may be empty.
type AssignCarrierCommand struct { //nolint:recvcheck //using for validation
	unitID                kernel.UUID
	carrierName           string
	carrierTrackingNumber string
	actor                 kernel.Actor

	guard guard.ConstructorGuard
}

// NewAssignCarrierCommand creates a command to record a carrier assignment.
func NewAssignCarrierCommand(
	unitID kernel.UUID,
	carrierName string,
	carrierTrackingNumber string,
	actor kernel.Actor,
) (AssignCarrierCommand, error) {
	cmd := AssignCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUnitID(unitID),
		cmd.setCarrierName(carrierName),
		cmd.setActor(actor),
	); err != nil {
		return AssignCarrierCommand{}, err
	}

	cmd.carrierTrackingNumber = carrierTrackingNumber
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCarrierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCarrierCommandIsNotConstructed)
}

// UnitID returns the fulfillment unit being handed over.
func (c AssignCarrierCommand) UnitID() kernel.UUID {
	return c.unitID
}

// CarrierName returns the shipping company's display name.
func (c AssignCarrierCommand) CarrierName() string {
	return c.carrierName
}

// CarrierTrackingNumber returns the carrier's own tracking reference, if any.
func (c AssignCarrierCommand) CarrierTrackingNumber() string {
	return c.carrierTrackingNumber
}

// Actor returns the caller's identity.
func (c AssignCarrierCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *AssignCarrierCommand) setUnitID(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}

	c.unitID = unitID
	return nil
}

func (c *AssignCarrierCommand) setCarrierName(carrierName string) error {
	if carrierName == "" {
		return errs.NewValueIsRequiredError("carrier name")
	}

	c.carrierName = carrierName
	return nil
}

func (c *AssignCarrierCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
