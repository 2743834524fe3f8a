package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrNotifyOverdueDeliveriesCommandIsNotConstructed = errors.New(
	"NotifyOverdueDeliveriesCommand must be created via NewNotifyOverdueDeliveriesCommand constructor",
)

// NotifyOverdueDeliveriesCommand represents a sweep over units that missed
// their delivery estimate. It carries no parameters; the handler works on the
// current clock.
type NotifyOverdueDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewNotifyOverdueDeliveriesCommand creates a command for the overdue sweep.
func NewNotifyOverdueDeliveriesCommand() NotifyOverdueDeliveriesCommand {
	return NotifyOverdueDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c NotifyOverdueDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrNotifyOverdueDeliveriesCommandIsNotConstructed)
}
