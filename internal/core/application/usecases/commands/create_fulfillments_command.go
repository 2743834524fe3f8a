package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateFulfillmentsCommandIsNotConstructed = errors.New(
	"CreateFulfillmentsCommand must be created via NewCreateFulfillmentsCommand constructor",
)

// CreateFulfillmentsCommand represents a request to start tracking a placed
// order: one fulfillment unit per order line, grouped by seller.
type CreateFulfillmentsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewCreateFulfillmentsCommand creates a command to open fulfillment tracking
// for an order. The actor must be authenticated; authorization is enforced by
// the handler.
func NewCreateFulfillmentsCommand(orderID kernel.UUID, actor kernel.Actor) (CreateFulfillmentsCommand, error) {
	cmd := CreateFulfillmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return CreateFulfillmentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFulfillmentsCommand) Validate() error {
	return c.guard.Validate(ErrCreateFulfillmentsCommandIsNotConstructed)
}

// OrderID returns the order to open tracking for.
func (c CreateFulfillmentsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the caller's identity.
func (c CreateFulfillmentsCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *CreateFulfillmentsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateFulfillmentsCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
