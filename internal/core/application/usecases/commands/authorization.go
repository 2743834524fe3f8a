package commands

import (
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// authorizeSellerWrite enforces the write rule shared by all unit mutations:
// admins may mutate any unit, sellers only their own.
func authorizeSellerWrite(operation string, actor kernel.Actor, unit *fulfillment.Unit) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role() == kernel.RoleSeller && actor.ID().IsEqual(unit.SellerID()) {
		return nil
	}
	return errs.NewUnauthorizedError(operation, actor.Role().String())
}
